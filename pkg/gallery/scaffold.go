package gallery

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:templates
var templatesFS embed.FS

// Template roots inside the embedded file system.
const (
	publicTemplateRoot = "templates/public"
	htmlTemplateRoot   = "templates/html"
)

// CreateStructure builds the gallery folder structure at root. It copies
// the public template, moves loose media into the photos folder and copies
// the HTML template, in that order. Template files overwrite files with
// the same name; everything else already in the target stays untouched.
func CreateStructure(root string) error {
	if err := copyTemplateTree(publicTemplateRoot, PublicPath(root)); err != nil {
		return err
	}

	// The photos and thumbnails folders ship empty, so the template walk
	// cannot create them.
	if err := os.MkdirAll(ImagesPath(root), 0o755); err != nil {
		return fmt.Errorf("create photos folder: %w", err)
	}
	if err := os.MkdirAll(ThumbnailsPath(root), 0o755); err != nil {
		return fmt.Errorf("create thumbnails folder: %w", err)
	}

	if _, err := MoveLooseMedia(root); err != nil {
		return err
	}

	return copyTemplateTree(htmlTemplateRoot, root)
}

// Plan lists what CreateStructure would do, without touching anything.
type Plan struct {
	PublicFiles []string // template files landing under root/public
	MediaMoves  []string // loose media names that would move into the photos folder
	HTMLFiles   []string // template files landing at root
}

// PlanStructure computes the scaffolding plan for root.
func PlanStructure(root string) (Plan, error) {
	publicFiles, err := templateFiles(publicTemplateRoot, "public")
	if err != nil {
		return Plan{}, err
	}

	moves, err := FindLooseMedia(root)
	if err != nil {
		return Plan{}, err
	}

	htmlFiles, err := templateFiles(htmlTemplateRoot, "")
	if err != nil {
		return Plan{}, err
	}

	return Plan{PublicFiles: publicFiles, MediaMoves: moves, HTMLFiles: htmlFiles}, nil
}

// copyTemplateTree copies an embedded template tree under destRoot,
// overwriting existing files and keeping everything else in place.
func copyTemplateTree(templateRoot, destRoot string) error {
	err := fs.WalkDir(templatesFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return fmt.Errorf("relative path: %w", err)
		}

		if rel == "." {
			return os.MkdirAll(destRoot, 0o755)
		}

		dest := filepath.Join(destRoot, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		data, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded file %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create folder: %w", err)
		}

		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk templates: %w", err)
	}

	return nil
}

func templateFiles(templateRoot, destPrefix string) ([]string, error) {
	var files []string
	err := fs.WalkDir(templatesFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(destPrefix, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk templates: %w", err)
	}
	return files, nil
}
