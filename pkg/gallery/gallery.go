// Package gallery implements the gallery folder structure: detecting
// existing galleries, scaffolding the template files, relocating media and
// building the gallery.json configuration.
package gallery

import (
	"os"
	"path/filepath"
)

// markerNames are the files and folders whose presence marks an already
// initialized gallery. Any single one counts.
var markerNames = []string{
	"gallery.json",
	"images_data.json",
	"index_template.html",
	"public",
}

// CanCreate reports whether a gallery can be created at root. The only
// requirement is that the path exists.
func CanCreate(root string) bool {
	_, err := os.Stat(root)
	return err == nil
}

// Exists reports whether root already contains a gallery.
func Exists(root string) bool {
	for _, name := range markerNames {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	return false
}

// Marker describes a single gallery marker and whether it is present.
type Marker struct {
	Name    string
	Present bool
}

// Markers reports the presence of every gallery marker under root.
func Markers(root string) []Marker {
	markers := make([]Marker, 0, len(markerNames))
	for _, name := range markerNames {
		_, err := os.Stat(filepath.Join(root, name))
		markers = append(markers, Marker{Name: name, Present: err == nil})
	}
	return markers
}

// ConfigPath returns the location of the gallery.json file for root.
func ConfigPath(root string) string {
	return filepath.Join(root, "gallery.json")
}

// ImagesDataPath returns the location of the images_data.json file for root.
func ImagesDataPath(root string) string {
	return filepath.Join(root, "images_data.json")
}

// PublicPath returns the public folder of the gallery at root.
func PublicPath(root string) string {
	return filepath.Join(root, "public")
}

// ImagesPath returns the photos folder of the gallery at root.
func ImagesPath(root string) string {
	return filepath.Join(root, "public", "images", "photos")
}

// ThumbnailsPath returns the thumbnails folder of the gallery at root.
func ThumbnailsPath(root string) string {
	return filepath.Join(root, "public", "images", "thumbnails")
}
