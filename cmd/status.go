package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"photo-gallery/pkg/gallery"
)

// statusReport is the machine-readable shape of the status command output.
type statusReport struct {
	Path            string         `json:"path"`
	Initialized     bool           `json:"initialized"`
	Markers         []markerStatus `json:"markers"`
	Photos          int            `json:"photos"`
	Thumbnails      int            `json:"thumbnails"`
	LooseMedia      int            `json:"loose_media"`
	Title           string         `json:"title,omitempty"`
	ThumbnailHeight int            `json:"thumbnail_height,omitempty"`
	ConfigError     string         `json:"config_error,omitempty"`
}

type markerStatus struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// newStatusCmd creates a new command for inspecting a gallery folder
func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the gallery folder",
		Long: `Show which gallery files are present in the gallery folder, how many photos
and thumbnails it holds and the settings read from gallery.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			report, err := buildStatusReport(cfg.GalleryPath)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, report)
			}

			renderStatusReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

// buildStatusReport collects the state of the gallery folder at root
func buildStatusReport(root string) (statusReport, error) {
	if !gallery.CanCreate(root) {
		return statusReport{}, fmt.Errorf("the specified gallery path does not exist (%s)", root)
	}

	report := statusReport{Path: root, Initialized: gallery.Exists(root)}
	for _, marker := range gallery.Markers(root) {
		report.Markers = append(report.Markers, markerStatus{Name: marker.Name, Present: marker.Present})
	}

	loose, err := gallery.FindLooseMedia(root)
	if err != nil {
		return statusReport{}, err
	}
	report.LooseMedia = len(loose)

	report.Photos = countMedia(gallery.ImagesPath(root))
	report.Thumbnails = countMedia(gallery.ThumbnailsPath(root))

	if report.Initialized {
		galleryConfig, err := gallery.ReadConfig(root)
		switch {
		case err == nil:
			report.Title = galleryConfig.Title
			report.ThumbnailHeight = galleryConfig.ThumbnailHeight
		case !os.IsNotExist(err):
			report.ConfigError = err.Error()
		}
	}

	return report, nil
}

// countMedia counts the media files directly inside dir. A missing folder
// counts as empty.
func countMedia(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && gallery.IsMediaFile(entry.Name()) {
			count++
		}
	}
	return count
}

// renderStatusReport prints the human-readable status report
func renderStatusReport(out io.Writer, report statusReport) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Gallery files", colorize) {
		fmt.Fprintln(out, line)
	}
	rows := make([][]string, 0, len(report.Markers))
	for _, marker := range report.Markers {
		state := "missing"
		if marker.Present {
			state = "present"
		}
		rows = append(rows, []string{marker.Name, state})
	}
	fmt.Fprintln(out, renderTable([]string{"File", "State"}, rows, []columnAlignment{alignLeft, alignLeft}))

	for _, line := range renderSectionHeader("Contents", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderStatusLine("Photos", statusInfo, fmt.Sprintf("%d", report.Photos), colorize))
	fmt.Fprintln(out, renderStatusLine("Thumbnails", statusInfo, fmt.Sprintf("%d", report.Thumbnails), colorize))
	fmt.Fprintln(out, renderStatusLine("Loose media", looseMediaKind(report.LooseMedia), looseMediaMessage(report.LooseMedia), colorize))

	hasConfigFile := false
	for _, marker := range report.Markers {
		if marker.Name == "gallery.json" && marker.Present {
			hasConfigFile = true
		}
	}
	switch {
	case report.ConfigError != "":
		fmt.Fprintln(out, renderStatusLine("Config", statusError, report.ConfigError, colorize))
	case hasConfigFile:
		message := fmt.Sprintf("%q (thumbnail height %d)", report.Title, report.ThumbnailHeight)
		fmt.Fprintln(out, renderStatusLine("Config", statusOK, message, colorize))
	case report.Initialized:
		fmt.Fprintln(out, renderStatusLine("Config", statusWarn, "gallery.json missing", colorize))
	}

	fmt.Fprintln(out)
	if report.Initialized {
		fmt.Fprintln(out, colorizeLine(ansiGreen, "Gallery is initialized.", colorize))
	} else {
		fmt.Fprintln(out, colorizeLine(ansiYellow, "No gallery here yet. Run photo-gallery init to create one.", colorize))
	}
}

func looseMediaKind(count int) statusKind {
	if count > 0 {
		return statusWarn
	}
	return statusOK
}

func looseMediaMessage(count int) string {
	if count > 0 {
		return fmt.Sprintf("%d files not yet in the photos folder", count)
	}
	return "none"
}
