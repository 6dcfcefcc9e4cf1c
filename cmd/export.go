package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/services"
)

// newExportCmd creates a new command for exporting the gallery feed
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export the gallery feed",
		Long:  `Export the gallery feed in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if format != "json" {
				return fmt.Errorf("unsupported export format %q (supported formats: json)", format)
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if !gallery.Exists(cfg.GalleryPath) {
				return fmt.Errorf("no gallery found at %s, run photo-gallery init first", cfg.GalleryPath)
			}
			services.InitService(cfg)

			return writeJSON(cmd, services.GetFeed())
		},
	}
}
