package cmd

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-filters/internal/assets"
	"github.com/kozaktomas/face-filters/internal/config"
	"github.com/kozaktomas/face-filters/internal/filter"
	"github.com/kozaktomas/face-filters/internal/landmark"
)

var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Composite filters onto an image or a directory of images",
	Long: `Apply the selected filters to a single image or to every image in a
directory. Landmarks are resolved through the configured face-mesh detector
(DETECTOR_URL). Results are written as PNG.

Examples:
  # Blush and sunglasses on one photo
  face-filters apply photo.jpg --filters blush,sunglasses --output out.png

  # Replace backgrounds for a whole directory (5 concurrent workers)
  face-filters apply ./photos --filters background --background beach.jpg --output ./out

  # Mirror the frame first, the selfie view
  face-filters apply selfie.jpg --filters rabbit-ears --mirror`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringSlice("filters", nil, "Filters to apply (blush, sunglasses, rabbit-ears, background)")
	applyCmd.Flags().String("output", "", "Output file, or output directory for batch runs")
	applyCmd.Flags().String("background", "", "Background image, required by the background filter")
	applyCmd.Flags().String("assets", "", "Directory with overlay image overrides")
	applyCmd.Flags().Bool("mirror", false, "Mirror the frame horizontally before detection")
	applyCmd.Flags().Int("concurrency", 5, "Number of parallel workers for batch runs")
}

// imageExtensions are the input formats the apply command picks up when
// scanning a directory.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

func runApply(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := mustGetString(cmd, "output")
	filterNames := mustGetStringSlice(cmd, "filters")
	backgroundPath := mustGetString(cmd, "background")
	assetsDir := mustGetString(cmd, "assets")
	mirror := mustGetBool(cmd, "mirror")
	concurrency := mustGetInt(cmd, "concurrency")

	cfg := config.Load()
	if assetsDir == "" {
		assetsDir = cfg.Assets.Dir
	}

	pipeline, err := buildPipeline(cfg, assetsDir, filterNames, backgroundPath, mirror)
	if err != nil {
		return err
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input path: %w", err)
	}

	if info.IsDir() {
		return applyDir(cmd.Context(), pipeline, input, output, concurrency)
	}
	return applyFile(cmd.Context(), pipeline, input, output)
}

// buildPipeline assembles the detector, assets and filter state shared by
// single and batch runs.
func buildPipeline(cfg *config.Config, assetsDir string, filterNames []string, backgroundPath string, mirror bool) (*filter.Pipeline, error) {
	library, err := assets.Load(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("loading overlay assets: %w", err)
	}

	state := filter.NewState()
	for _, name := range filterNames {
		kind, err := filter.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		state.Enable(kind, true)
	}

	if state.Enabled(filter.Background) {
		if backgroundPath == "" {
			return nil, fmt.Errorf("the background filter requires --background")
		}
		bg, err := assets.LoadImage(backgroundPath)
		if err != nil {
			return nil, fmt.Errorf("loading background image: %w", err)
		}
		state.SetBackground(bg)
	}

	detector, err := landmark.NewMeshClient(cfg.Detector.URL, cfg.Detector.MaxFaces)
	if err != nil {
		return nil, fmt.Errorf("configuring detector: %w", err)
	}
	pipeline := filter.NewPipeline(detector, state, library.Sunglasses, library.RabbitEars, cfg.Tuning)
	pipeline.SetMirror(mirror)
	return pipeline, nil
}

// processOne loads a frame, runs the pipeline and writes the result as PNG.
func processOne(ctx context.Context, pipeline *filter.Pipeline, inputPath, outputPath string) error {
	frame, err := assets.LoadImage(inputPath)
	if err != nil {
		return err
	}

	out, err := pipeline.Process(ctx, frame)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}

	f, err := os.Create(outputPath) //nolint:gosec // path comes from user flags
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}
	return nil
}

func applyFile(ctx context.Context, pipeline *filter.Pipeline, input, output string) error {
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "_filtered.png"
	}

	if err := processOne(ctx, pipeline, input, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}

func applyDir(ctx context.Context, pipeline *filter.Pipeline, inputDir, outputDir string, concurrency int) error {
	if outputDir == "" {
		return fmt.Errorf("--output directory is required for batch runs")
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			inputs = append(inputs, entry.Name())
		}
	}
	if len(inputs) == 0 {
		fmt.Println("No images found in input directory")
		return nil
	}

	fmt.Printf("Images to process: %d\n\n", len(inputs))

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("Applying filters"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	var successCount, errorCount int
	var mu sync.Mutex

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, name := range inputs {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			ext := filepath.Ext(name)
			outputPath := filepath.Join(outputDir, strings.TrimSuffix(name, ext)+".png")

			if err := processOne(ctx, pipeline, filepath.Join(inputDir, name), outputPath); err != nil {
				mu.Lock()
				errorCount++
				mu.Unlock()
				bar.Add(1)
				return
			}

			mu.Lock()
			successCount++
			mu.Unlock()
			bar.Add(1)
		}(name)
	}

	wg.Wait()
	fmt.Println()

	fmt.Printf("\nCompleted: %d successful, %d errors\n", successCount, errorCount)
	return nil
}
