package services

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"
	"unicode"

	"github.com/patrickmn/go-cache"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/models"
)

// Service handles operations related to the gallery feed
type Service struct {
	config     *config.Config
	photoCache *cache.Cache
	mu         sync.RWMutex
}

// naturalLess compares strings in a way that treats numbers as numbers rather than characters
// For example: "photo2" < "photo10" when using naturalLess
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		// Skip leading spaces
		for i < len(s1) && unicode.IsSpace(rune(s1[i])) {
			i++
		}
		for j < len(s2) && unicode.IsSpace(rune(s2[j])) {
			j++
		}

		// If we reached the end of either string
		if i >= len(s1) || j >= len(s2) {
			break
		}

		// If both characters are digits, compare the numbers
		if unicode.IsDigit(rune(s1[i])) && unicode.IsDigit(rune(s2[j])) {
			// Extract consecutive digits
			var num1, num2 string
			for i < len(s1) && unicode.IsDigit(rune(s1[i])) {
				num1 += string(s1[i])
				i++
			}
			for j < len(s2) && unicode.IsDigit(rune(s2[j])) {
				num2 += string(s2[j])
				j++
			}

			// Convert to integers and compare
			n1, _ := strconv.Atoi(num1)
			n2, _ := strconv.Atoi(num2)
			if n1 != n2 {
				return n1 < n2
			}
			// If numbers are equal, continue to next characters
		} else {
			// Compare characters
			if s1[i] != s2[j] {
				return s1[i] < s2[j]
			}
			i++
			j++
		}
	}

	// If we've reached the end of one string but not the other
	return len(s1) < len(s2)
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the singleton service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = NewService(cfg)
	})
}

// NewService creates a service for the gallery configured in cfg. The feed
// is cached briefly so repeated requests do not re-read the photos folder,
// while edits still show up on the next rebuild.
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:     cfg,
		photoCache: cache.New(5*time.Second, time.Minute),
	}
}

// GetFeed returns the gallery feed with all photos
func GetFeed() models.Feed {
	return defaultService.GetFeedInternal()
}

// UploadPublic uploads the gallery's public folder to cloud storage
func UploadPublic(prefix string) (UploadSummary, error) {
	return defaultService.UploadPublicInternal(prefix)
}

// GetFeedInternal returns the gallery feed with all photos
func (s *Service) GetFeedInternal() models.Feed {
	s.mu.RLock()
	if cached, found := s.photoCache.Get("feed"); found {
		s.mu.RUnlock()
		slog.Debug("Using cached feed")
		return cached.(models.Feed)
	}
	s.mu.RUnlock()

	slog.Debug("Building feed")
	root := s.config.GalleryPath

	galleryConfig, err := gallery.ReadConfig(root)
	if err != nil {
		slog.Warn("Could not read gallery.json, falling back to defaults", "error", err)
		galleryConfig = gallery.DefaultConfig(root)
	}

	feed := models.Feed{
		Title:       galleryConfig.Title,
		Description: galleryConfig.Description,
		Photos:      s.listPhotos(root),
	}

	s.mu.Lock()
	s.photoCache.Set("feed", feed, cache.DefaultExpiration)
	s.mu.Unlock()

	return feed
}

// listPhotos collects the media files in the photos folder, with thumbnail
// URLs for photos that have one.
func (s *Service) listPhotos(root string) []models.Photo {
	entries, err := os.ReadDir(gallery.ImagesPath(root))
	if err != nil {
		slog.Warn("Could not read photos folder", "error", err)
		return []models.Photo{}
	}

	photos := make([]models.Photo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !gallery.IsMediaFile(name) {
			continue
		}

		photo := models.Photo{
			Name: name,
			Path: filepath.Join(gallery.ImagesPath(root), name),
			Url:  photoURL("photos", name),
		}

		if _, err := os.Stat(filepath.Join(gallery.ThumbnailsPath(root), name)); err == nil {
			thumbnail := photoURL("thumbnails", name)
			photo.Thumbnail = &thumbnail
		}

		photos = append(photos, photo)
	}

	// Sort photos alphabetically by name with natural sorting for numbers
	sort.Slice(photos, func(i, j int) bool {
		return naturalLess(photos[i].Name, photos[j].Name)
	})

	return photos
}

func photoURL(folder, name string) string {
	return "/images/" + folder + "/" + url.PathEscape(name)
}
