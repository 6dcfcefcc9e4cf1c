package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	GalleryPath string
	BucketName  string
	Port        string
}

// ErrBucketNameNotSet is returned when an operation needs the BUCKET_NAME
// environment variable and it is not set
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	galleryPath := os.Getenv("GALLERY_PATH")
	if galleryPath == "" {
		galleryPath = "."
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("invalid PORT value %q", port)
	}

	return &Config{
		GalleryPath: galleryPath,
		BucketName:  os.Getenv("BUCKET_NAME"),
		Port:        port,
	}, nil
}

// RequireBucket returns the configured bucket name or ErrBucketNameNotSet.
func (c *Config) RequireBucket() (string, error) {
	if c.BucketName == "" {
		return "", ErrBucketNameNotSet
	}
	return c.BucketName, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}
