package cmd

import (
	"encoding/json"
	"testing"

	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/models"
)

func TestExportUnknownFormat(t *testing.T) {
	_, _, err := runCLI(t, "", "export", "xml")
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	requireContains(t, err.Error(), "unsupported export format")
	requireContains(t, err.Error(), "xml")
}

func TestExportWithoutGallery(t *testing.T) {
	root := newGalleryDir(t)

	_, _, err := runCLI(t, "", "export", "--path", root)
	if err == nil {
		t.Fatal("expected an error without a gallery")
	}
	requireContains(t, err.Error(), "no gallery found")
}

func TestExportFeed(t *testing.T) {
	root := initializedGallery(t, "z2.jpg", "z10.jpg")

	stdout, _, err := runCLI(t, "", "export", "--path", root)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var feed models.Feed
	if err := json.Unmarshal([]byte(stdout), &feed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if feed.Title != gallery.DefaultTitle {
		t.Errorf("feed title = %q, want %q", feed.Title, gallery.DefaultTitle)
	}
	if len(feed.Photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(feed.Photos))
	}
	if feed.Photos[0].Name != "z2.jpg" || feed.Photos[1].Name != "z10.jpg" {
		t.Errorf("photo order = %q, %q, want natural order z2.jpg, z10.jpg",
			feed.Photos[0].Name, feed.Photos[1].Name)
	}
}
