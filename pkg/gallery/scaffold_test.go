package gallery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateStructure(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.JPG", "b.mp4", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := CreateStructure(dir); err != nil {
		t.Fatalf("CreateStructure: %v", err)
	}

	// Template files are in place.
	for _, rel := range []string{
		filepath.Join("public", "css", "main.css"),
		filepath.Join("public", "js", "main.js"),
		"index_template.html",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Fatalf("template file %s missing: %v", rel, err)
		}
	}

	// The image folders exist even though no media goes into thumbnails.
	for _, path := range []string{ImagesPath(dir), ThumbnailsPath(dir)} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a folder", path)
		}
	}

	// Media moved, other files stayed.
	if _, err := os.Stat(filepath.Join(ImagesPath(dir), "a.JPG")); err != nil {
		t.Fatalf("a.JPG not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ImagesPath(dir), "b.mp4")); err != nil {
		t.Fatalf("b.mp4 not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.txt")); err != nil {
		t.Fatalf("c.txt should stay at root: %v", err)
	}
}

func TestCreateStructureMergesIntoExistingPublic(t *testing.T) {
	dir := t.TempDir()

	// A leftover file in public and a stale template file with known content.
	if err := os.MkdirAll(filepath.Join(dir, "public", "css"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	keep := filepath.Join(dir, "public", "keep.txt")
	if err := os.WriteFile(keep, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write keep: %v", err)
	}
	stale := filepath.Join(dir, "public", "css", "main.css")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale: %v", err)
	}

	if err := CreateStructure(dir); err != nil {
		t.Fatalf("CreateStructure: %v", err)
	}

	data, err := os.ReadFile(keep)
	if err != nil {
		t.Fatalf("unrelated file lost in merge: %v", err)
	}
	if string(data) != "keep me" {
		t.Fatalf("unrelated file rewritten: %q", data)
	}

	data, err = os.ReadFile(stale)
	if err != nil {
		t.Fatalf("read template target: %v", err)
	}
	if string(data) == "stale" {
		t.Fatalf("template file not overwritten")
	}
}

func TestCreateStructureTwice(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := CreateStructure(dir); err != nil {
		t.Fatalf("first CreateStructure: %v", err)
	}
	if err := CreateStructure(dir); err != nil {
		t.Fatalf("second CreateStructure: %v", err)
	}

	// The photo moved once, the second run finds nothing loose.
	entries, err := os.ReadDir(ImagesPath(dir))
	if err != nil {
		t.Fatalf("read photos folder: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "photo.jpg" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("photos folder = %v, want just photo.jpg", names)
	}
}

func TestPlanStructure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	plan, err := PlanStructure(dir)
	if err != nil {
		t.Fatalf("PlanStructure: %v", err)
	}

	if len(plan.MediaMoves) != 1 || plan.MediaMoves[0] != "photo.jpg" {
		t.Fatalf("MediaMoves = %v", plan.MediaMoves)
	}

	foundCSS := false
	for _, f := range plan.PublicFiles {
		if f == filepath.Join("public", "css", "main.css") {
			foundCSS = true
		}
	}
	if !foundCSS {
		t.Fatalf("PublicFiles = %v, want css template listed", plan.PublicFiles)
	}

	foundHTML := false
	for _, f := range plan.HTMLFiles {
		if f == "index_template.html" {
			foundHTML = true
		}
	}
	if !foundHTML {
		t.Fatalf("HTMLFiles = %v, want index_template.html listed", plan.HTMLFiles)
	}

	// Planning must not create anything.
	if _, err := os.Stat(PublicPath(dir)); !os.IsNotExist(err) {
		t.Fatalf("PlanStructure created the public folder")
	}
	if _, err := os.Stat(filepath.Join(dir, "photo.jpg")); err != nil {
		t.Fatalf("PlanStructure moved media: %v", err)
	}
}
