package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/services"
)

// newUploadCmd creates a new command for uploading the gallery
func newUploadCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the gallery to Google Cloud Storage",
		Long: `Upload the gallery's public folder to the configured Google Cloud Storage
bucket. Files that already exist in the bucket with the same size are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if !gallery.Exists(cfg.GalleryPath) {
				return fmt.Errorf("no gallery found at %s, run photo-gallery init first", cfg.GalleryPath)
			}
			services.InitService(cfg)

			summary, err := services.UploadPublic(prefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nSummary:\n")
			fmt.Fprintf(out, "  Files uploaded: %d (%s)\n", summary.Uploaded, services.FormatSize(summary.UploadedBytes))
			fmt.Fprintf(out, "  Files skipped: %d\n", summary.Skipped)
			return nil
		},
	}

	// Add command-specific flags
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object name prefix inside the bucket")

	return cmd
}
