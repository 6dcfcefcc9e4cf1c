package main

import (
	"log/slog"
	"net/http"
	"os"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/handlers"
	"photo-gallery/pkg/logging"
	"photo-gallery/pkg/services"
)

func main() {
	logging.Setup(false)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize services
	services.InitService(cfg)

	// Set up HTTP handlers
	fileServer := http.FileServer(http.Dir(gallery.PublicPath(cfg.GalleryPath)))
	http.Handle("/", fileServer)
	http.HandleFunc("/feed", handlers.FeedHandler)

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), nil); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
