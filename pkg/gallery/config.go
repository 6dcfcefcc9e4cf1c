package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"photo-gallery/pkg/models"
	"photo-gallery/pkg/prompt"
)

// Default values offered at the interactive prompts.
const (
	DefaultTitle           = "My Gallery"
	DefaultDescription     = "Default description of my gallery"
	DefaultThumbnailHeight = 320
)

// Bounds accepted for the thumbnail height.
const (
	MinThumbnailHeight = 32
	MaxThumbnailHeight = 1024
)

// DefaultConfig returns a gallery configuration with the derived paths for
// root and every default value applied.
func DefaultConfig(root string) models.GalleryConfig {
	return models.GalleryConfig{
		ImagesDataFile:  ImagesDataPath(root),
		PublicPath:      PublicPath(root),
		ImagesPath:      ImagesPath(root),
		ThumbnailsPath:  ThumbnailsPath(root),
		Title:           DefaultTitle,
		Description:     DefaultDescription,
		ThumbnailHeight: DefaultThumbnailHeight,
	}
}

// BuildConfig derives the gallery paths for root and fills in the title,
// description and thumbnail height by asking the user. Empty answers take
// the defaults; the thumbnail height is asked again until it is a plain
// number between the bounds.
func BuildConfig(root string, asker prompt.Asker) (models.GalleryConfig, error) {
	cfg := DefaultConfig(root)

	title, err := prompt.String(asker,
		fmt.Sprintf("What is the title of your gallery? (default: %q)\n", DefaultTitle),
		DefaultTitle)
	if err != nil {
		return models.GalleryConfig{}, err
	}
	cfg.Title = title

	description, err := prompt.String(asker,
		fmt.Sprintf("What is the description of your gallery? (default: %q)\n", DefaultDescription),
		DefaultDescription)
	if err != nil {
		return models.GalleryConfig{}, err
	}
	cfg.Description = description

	height, err := prompt.IntInRange(asker,
		fmt.Sprintf("What should be the height of your thumbnails (between %d and %d)? (default: %d)\n",
			MinThumbnailHeight, MaxThumbnailHeight, DefaultThumbnailHeight),
		DefaultThumbnailHeight, MinThumbnailHeight, MaxThumbnailHeight)
	if err != nil {
		return models.GalleryConfig{}, err
	}
	cfg.ThumbnailHeight = height

	return cfg, nil
}

// WriteConfig writes cfg to the gallery.json under root, replacing any
// existing file. The file uses four-space indentation.
func WriteConfig(root string, cfg models.GalleryConfig) error {
	f, err := os.Create(ConfigPath(root))
	if err != nil {
		return fmt.Errorf("create gallery.json: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode gallery.json: %w", err)
	}

	return f.Close()
}

// ReadConfig loads the gallery.json under root.
func ReadConfig(root string) (models.GalleryConfig, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return models.GalleryConfig{}, err
	}

	var cfg models.GalleryConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.GalleryConfig{}, fmt.Errorf("parse gallery.json: %w", err)
	}
	return cfg, nil
}
