package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with the given stdin and arguments,
// returning captured stdout, stderr and the execution error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// LoadConfig exports flags as environment variables, so pin them
	// between runs to keep tests independent.
	t.Setenv("GALLERY_PATH", "")
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("PORT", "")

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newGalleryDir creates a folder holding the given loose files.
func newGalleryDir(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%q) failed: %v", path, err)
		}
	}
	return root
}

// initializedGallery creates a folder and initializes a gallery in it with
// the default answers.
func initializedGallery(t *testing.T, names ...string) string {
	t.Helper()
	root := newGalleryDir(t, names...)
	if _, _, err := runCLI(t, "", "init", "--path", root, "--defaults"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return root
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
