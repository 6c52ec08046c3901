package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DETECTOR_URL")
	os.Unsetenv("DETECTOR_MAX_FACES")
	os.Unsetenv("WEB_HOST")
	os.Unsetenv("WEB_PORT")
	os.Unsetenv("ASSETS_DIR")

	cfg := Load()

	if cfg.Detector.URL != "http://localhost:9400" {
		t.Errorf("expected default detector URL, got '%s'", cfg.Detector.URL)
	}
	if cfg.Detector.MaxFaces != 10 {
		t.Errorf("expected default max faces 10, got %d", cfg.Detector.MaxFaces)
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Web.Port)
	}
	if cfg.Web.Host != "0.0.0.0" {
		t.Errorf("expected default host '0.0.0.0', got '%s'", cfg.Web.Host)
	}
	if cfg.Assets.Dir != "" {
		t.Errorf("expected empty assets dir, got '%s'", cfg.Assets.Dir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DETECTOR_URL", "http://mesh.internal:9000")
	t.Setenv("DETECTOR_MAX_FACES", "3")
	t.Setenv("WEB_HOST", "127.0.0.1")
	t.Setenv("WEB_PORT", "9090")
	t.Setenv("ASSETS_DIR", "/opt/overlays")

	cfg := Load()

	if cfg.Detector.URL != "http://mesh.internal:9000" {
		t.Errorf("expected detector URL override, got '%s'", cfg.Detector.URL)
	}
	if cfg.Detector.MaxFaces != 3 {
		t.Errorf("expected max faces 3, got %d", cfg.Detector.MaxFaces)
	}
	if cfg.Web.Host != "127.0.0.1" {
		t.Errorf("expected host '127.0.0.1', got '%s'", cfg.Web.Host)
	}
	if cfg.Web.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Web.Port)
	}
	if cfg.Assets.Dir != "/opt/overlays" {
		t.Errorf("expected assets dir '/opt/overlays', got '%s'", cfg.Assets.Dir)
	}
}

func TestLoad_InvalidMaxFaces(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "lots"},
		{"negative", "-2"},
		{"zero", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DETECTOR_MAX_FACES", tc.value)

			cfg := Load()

			if cfg.Detector.MaxFaces != 10 {
				t.Errorf("expected fallback to 10 for %q, got %d", tc.value, cfg.Detector.MaxFaces)
			}
		})
	}
}

func TestLoad_EmbeddedTuning(t *testing.T) {
	cfg := Load()

	if cfg.Tuning.BlushAlpha != 0.35 {
		t.Errorf("expected blush alpha 0.35 from embedded YAML, got %f", cfg.Tuning.BlushAlpha)
	}
	if cfg.Tuning.SunglassesWidthFactor != 1.25 {
		t.Errorf("expected sunglasses width factor 1.25, got %f", cfg.Tuning.SunglassesWidthFactor)
	}
	if cfg.Tuning.EarsWidthFactor != 1.15 {
		t.Errorf("expected ears width factor 1.15, got %f", cfg.Tuning.EarsWidthFactor)
	}
}
