package services

import (
	"errors"
	"strings"
	"testing"

	"photo-gallery/pkg/config"
)

func TestUploadPublicRequiresBucket(t *testing.T) {
	service := NewService(&config.Config{GalleryPath: t.TempDir(), Port: "8080"})

	if _, err := service.UploadPublicInternal(""); !errors.Is(err, config.ErrBucketNameNotSet) {
		t.Fatalf("err = %v, want ErrBucketNameNotSet", err)
	}
}

func TestObjectNameFor(t *testing.T) {
	tests := []struct {
		prefix string
		rel    string
		want   string
	}{
		{"", "index.html", "index.html"},
		{"", "images/photos/a.jpg", "images/photos/a.jpg"},
		{"site", "index.html", "site/index.html"},
		{"site/", "index.html", "site/index.html"},
		{"a/b", "css/main.css", "a/b/css/main.css"},
	}

	for _, tt := range tests {
		if got := objectNameFor(tt.prefix, tt.rel); got != tt.want {
			t.Fatalf("objectNameFor(%q, %q) = %q, want %q", tt.prefix, tt.rel, got, tt.want)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := contentTypeFor("photo.jpg"); got != "image/jpeg" {
		t.Fatalf("contentTypeFor(photo.jpg) = %q", got)
	}
	if got := contentTypeFor("index.html"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("contentTypeFor(index.html) = %q", got)
	}
	if got := contentTypeFor("file.unknownext"); got != "application/octet-stream" {
		t.Fatalf("contentTypeFor(file.unknownext) = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Fatalf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
