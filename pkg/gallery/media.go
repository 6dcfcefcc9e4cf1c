package gallery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// mediaExtensions are the file name endings recognized as gallery media.
// The list is fixed and matching is case-insensitive.
var mediaExtensions = []string{".jpg", ".jpeg", ".gif", ".mp4"}

// IsMediaFile reports whether name ends in one of the recognized media
// extensions.
func IsMediaFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FindLooseMedia returns the names of the immediate children of root that
// look like media files, in directory order. Subfolders are not scanned
// and hidden entries are ignored.
func FindLooseMedia(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read gallery folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if IsMediaFile(name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// MoveLooseMedia moves every media file found directly under root into the
// photos folder, keeping names and overwriting on collision. It returns
// the names that were moved.
func MoveLooseMedia(root string) ([]string, error) {
	names, err := FindLooseMedia(root)
	if err != nil {
		return nil, err
	}

	photosDir := ImagesPath(root)
	moved := make([]string, 0, len(names))
	for _, name := range names {
		if err := movePath(filepath.Join(root, name), filepath.Join(photosDir, name)); err != nil {
			return moved, fmt.Errorf("move %s: %w", name, err)
		}
		moved = append(moved, name)
	}
	return moved, nil
}

// movePath renames src to dst, falling back to copy and remove when the
// two sit on different file systems.
func movePath(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFile(src, dst); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return renameErr
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
