package models

// GalleryConfig represents the contents of a gallery.json file.
// The field order matches the key order written to disk.
type GalleryConfig struct {
	ImagesDataFile  string `json:"images_data_file"`
	PublicPath      string `json:"public_path"`
	ImagesPath      string `json:"images_path"`
	ThumbnailsPath  string `json:"thumbnails_path"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailHeight int    `json:"thumbnail_height"`
}

// Photo represents a photo or video file with an optional thumbnail
type Photo struct {
	Name      string  `json:"name"`
	Path      string  `json:"-"`
	Url       string  `json:"url"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// Feed represents the gallery feed served as JSON
type Feed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Photos      []Photo `json:"photos"`
}
