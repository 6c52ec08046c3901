package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "face-filters",
	Short: "A CLI tool for compositing face filters onto images",
	Long: `Face Filters composites playful overlays (blush, sunglasses, rabbit ears,
background replacement) onto photos. Placement is derived from facial
landmarks resolved by an external face-mesh detector, so overlays follow
face position, size and tilt.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
