package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-filters/internal/assets"
	"github.com/kozaktomas/face-filters/internal/config"
	"github.com/kozaktomas/face-filters/internal/landmark"
	"github.com/kozaktomas/face-filters/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Face Filters web server.
The server exposes a stateless HTTP API: POST an image with a filter
selection and receive the composited frame back as PNG.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides WEB_PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (overrides WEB_HOST)")
	serveCmd.Flags().String("assets", "", "Directory with overlay image overrides (overrides ASSETS_DIR)")
}

// resolveServeHostPort resolves host and port from flags, falling back to
// configuration values.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.Config) (string, int) {
	host := mustGetString(cmd, "host")
	port := mustGetInt(cmd, "port")

	if host == "" {
		host = cfg.Web.Host
	}
	if port == 0 {
		port = cfg.Web.Port
	}
	return host, port
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	assetsDir := mustGetString(cmd, "assets")
	if assetsDir == "" {
		assetsDir = cfg.Assets.Dir
	}

	library, err := assets.Load(assetsDir)
	if err != nil {
		return fmt.Errorf("loading overlay assets: %w", err)
	}

	detector, err := landmark.NewMeshClient(cfg.Detector.URL, cfg.Detector.MaxFaces)
	if err != nil {
		return fmt.Errorf("configuring detector: %w", err)
	}
	host, port := resolveServeHostPort(cmd, cfg)

	server := web.NewServer(host, port, detector, library, cfg.Tuning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Using face-mesh detector at %s (max %d faces)\n", cfg.Detector.URL, cfg.Detector.MaxFaces)
	fmt.Printf("Starting Face Filters API on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
