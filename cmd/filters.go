package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-filters/internal/config"
	"github.com/kozaktomas/face-filters/internal/filter"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the available filters and their tuning",
	Run:   runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, args []string) {
	cfg := config.Load()

	fmt.Println("Available filters:")
	for _, kind := range filter.Kinds {
		switch kind {
		case filter.Background:
			fmt.Printf("  %-12s requires --background\n", kind)
		default:
			fmt.Printf("  %s\n", kind)
		}
	}

	fmt.Println("\nTuning:")
	fmt.Printf("  blush alpha:             %.2f\n", cfg.Tuning.BlushAlpha)
	fmt.Printf("  blush radius ratio:      %.2f\n", cfg.Tuning.BlushRadiusRatio)
	fmt.Printf("  sunglasses width factor: %.2f\n", cfg.Tuning.SunglassesWidthFactor)
	fmt.Printf("  ears width factor:       %.2f\n", cfg.Tuning.EarsWidthFactor)
	fmt.Printf("  ears offset factor:      %.2f\n", cfg.Tuning.EarsOffsetFactor)
}
