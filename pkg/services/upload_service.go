package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"photo-gallery/pkg/gallery"
)

// UploadSummary reports the outcome of an upload run.
type UploadSummary struct {
	Uploaded      int
	Skipped       int
	UploadedBytes int64
}

// UploadPublicInternal uploads every file under the gallery's public folder
// to the configured bucket, under the given object name prefix. Files whose
// remote copy already has the same size are skipped.
func (s *Service) UploadPublicInternal(prefix string) (UploadSummary, error) {
	bucketName, err := s.config.RequireBucket()
	if err != nil {
		return UploadSummary{}, err
	}

	publicDir := gallery.PublicPath(s.config.GalleryPath)
	if _, err := os.Stat(publicDir); err != nil {
		return UploadSummary{}, fmt.Errorf("no public folder to upload: %w", err)
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return UploadSummary{}, fmt.Errorf("failed to create storage client: %v", err)
	}
	defer client.Close()

	bucket := client.Bucket(bucketName)

	remoteSizes, err := listRemoteSizes(ctx, bucket, prefix)
	if err != nil {
		return UploadSummary{}, err
	}

	var summary UploadSummary
	err = filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(publicDir, path)
		if err != nil {
			return err
		}
		objectName := objectNameFor(prefix, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		if size, ok := remoteSizes[objectName]; ok && size == info.Size() {
			slog.Debug("Skipping unchanged file", "object", objectName)
			summary.Skipped++
			return nil
		}

		fmt.Printf("  Uploading %s\n", objectName)
		if err := uploadObject(ctx, bucket, path, objectName, info.Size()); err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		summary.Uploaded++
		summary.UploadedBytes += info.Size()
		return nil
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// listRemoteSizes collects the sizes of the objects already in the bucket
// under prefix.
func listRemoteSizes(ctx context.Context, bucket *storage.BucketHandle, prefix string) (map[string]int64, error) {
	listCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var query *storage.Query
	if prefix != "" {
		query = &storage.Query{Prefix: prefix}
	}

	sizes := make(map[string]int64)
	it := bucket.Objects(listCtx, query)
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %v", err)
		}
		sizes[obj.Name] = obj.Size
	}

	return sizes, nil
}

// objectNameFor joins the prefix and the file's path relative to the public
// folder into an object name with forward slashes.
func objectNameFor(prefix, rel string) string {
	name := filepath.ToSlash(rel)
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}

// uploadObject streams a local file into the bucket with progress output.
func uploadObject(ctx context.Context, bucket *storage.BucketHandle, src, dst string, size int64) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("os.Open: %v", err)
	}
	defer f.Close()

	writer := bucket.Object(dst).NewWriter(ctx)
	writer.ContentType = contentTypeFor(src)

	reader := &progressReader{
		reader:        f,
		contentLength: size,
		fileName:      filepath.Base(src),
		action:        "Uploading",
		lastUpdate:    time.Now(),
	}

	if _, err := io.Copy(writer, reader); err != nil {
		writer.Close()
		return fmt.Errorf("io.Copy: %v", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %v", err)
	}

	if size > 0 {
		fmt.Println()
	}

	return nil
}

// contentTypeFor guesses the content type from the file extension.
func contentTypeFor(path string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// progressReader wraps an io.Reader to provide progress updates
type progressReader struct {
	reader        io.Reader
	contentLength int64
	fileName      string
	action        string
	lastUpdate    time.Time
	bytesRead     int64
}

// Read implements the io.Reader interface
func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.bytesRead += int64(n)

	// Don't report progress too frequently - update at most every 500ms
	now := time.Now()
	if now.Sub(pr.lastUpdate) >= 500*time.Millisecond {
		pr.updateProgress()
		pr.lastUpdate = now
	}

	return n, err
}

// updateProgress prints the transfer progress
func (pr *progressReader) updateProgress() {
	if pr.contentLength <= 0 {
		// If content length is unknown, just show bytes read
		fmt.Printf("\r    %s %s: %d bytes...", pr.action, pr.fileName, pr.bytesRead)
		return
	}

	// Calculate percentage
	percent := float64(pr.bytesRead) / float64(pr.contentLength) * 100

	// Format sizes in human-readable format
	transferred := FormatSize(pr.bytesRead)
	total := FormatSize(pr.contentLength)

	// Update the progress line (overwrite previous with \r)
	fmt.Printf("\r    %s %s: %.1f%% (%s/%s)...", pr.action, pr.fileName, percent, transferred, total)
}

// FormatSize converts bytes to a human-readable format
func FormatSize(bytes int64) string {
	const (
		B  int64 = 1
		KB       = B * 1024
		MB       = KB * 1024
		GB       = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
