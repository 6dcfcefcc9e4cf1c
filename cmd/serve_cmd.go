package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/handlers"
	"photo-gallery/pkg/services"
)

// newServeCmd creates a new command for serving the gallery preview
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the preview web server",
		Long:  `Start a local web server that serves the gallery's public folder and the JSON feed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if !gallery.Exists(cfg.GalleryPath) {
				return fmt.Errorf("no gallery found at %s, run photo-gallery init first", cfg.GalleryPath)
			}
			services.InitService(cfg)
			return serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the gallery content
func serveWebsite(cfg *config.Config) error {
	fileServer := http.FileServer(http.Dir(gallery.PublicPath(cfg.GalleryPath)))
	http.Handle("/", fileServer)
	http.HandleFunc("/feed", handlers.FeedHandler)

	// Start server
	cfg.PrintServerStartMessage()
	return http.ListenAndServe(cfg.ServerAddress(), nil)
}
