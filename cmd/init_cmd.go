package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"photo-gallery/pkg/gallery"
	"photo-gallery/pkg/prompt"
)

// newInitCmd creates a new command for initializing a gallery folder
func newInitCmd() *cobra.Command {
	var (
		force       bool
		dryRun      bool
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gallery in the gallery folder",
		Long: `Initialize a new photo gallery. This copies the gallery template files, moves
loose photos and videos into the photos subfolder and asks a few questions to
create the gallery configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			var asker prompt.Asker = prompt.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())
			if useDefaults {
				asker = prompt.Defaults{}
			}

			return initGallery(cmd, cfg.GalleryPath, asker, force, dryRun)
		},
	}

	// Add command-specific flags
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the config and template files of an existing gallery")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what init would create without changing anything")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Accept the default answers without asking")

	return cmd
}

// initGallery runs the gallery initialization flow against the given folder
func initGallery(cmd *cobra.Command, root string, asker prompt.Asker, force, dryRun bool) error {
	if !gallery.CanCreate(root) {
		return fmt.Errorf("the specified gallery path does not exist (%s)", root)
	}

	if gallery.Exists(root) {
		if !force {
			slog.Info("A gallery already exists at the specified location. Set the --force parameter if you want to overwrite it.")
			return nil
		}
		slog.Info("A gallery already exists at the specified location, but will be overwritten.")
	}

	if dryRun {
		return printPlan(cmd, root)
	}

	if err := gallery.CreateStructure(root); err != nil {
		return err
	}

	galleryConfig, err := gallery.BuildConfig(root, asker)
	if err != nil {
		return err
	}

	if err := gallery.WriteConfig(root, galleryConfig); err != nil {
		return err
	}

	slog.Info("Gallery initialized", "path", root)
	return nil
}

// printPlan describes what initGallery would do without touching the folder
func printPlan(cmd *cobra.Command, root string) error {
	plan, err := gallery.PlanStructure(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Would copy template files:")
	for _, file := range plan.PublicFiles {
		fmt.Fprintf(out, "  %s\n", file)
	}
	for _, file := range plan.HTMLFiles {
		fmt.Fprintf(out, "  %s\n", file)
	}

	if len(plan.MediaMoves) > 0 {
		fmt.Fprintln(out, "Would move media files:")
		for _, name := range plan.MediaMoves {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}

	fmt.Fprintf(out, "Would write %s\n", gallery.ConfigPath(root))
	return nil
}
