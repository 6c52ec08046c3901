package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/face-filters/internal/filter"
)

//go:embed filters.yaml
var filtersYAML []byte

type Config struct {
	Detector DetectorConfig
	Web      WebConfig
	Assets   AssetsConfig
	Tuning   filter.Params
}

type DetectorConfig struct {
	URL      string // face-mesh detector base URL (e.g. http://localhost:9400)
	MaxFaces int    // cap on faces resolved per frame (default 10)
}

type WebConfig struct {
	Host string
	Port int
}

type AssetsConfig struct {
	Dir string // optional directory with overlay image overrides
}

// tuningFile is the embedded filters.yaml layout.
type tuningFile struct {
	Tuning filter.Params `yaml:"tuning"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envStr reads an environment variable with a fallback default.
func envStr(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var tuning tuningFile
	if err := yaml.Unmarshal(filtersYAML, &tuning); err != nil {
		// This is an embedded file so this error should never happen in practice.
		panic("failed to unmarshal embedded filters.yaml: " + err.Error())
	}
	tuning.Tuning.Normalize()

	return &Config{
		Detector: DetectorConfig{
			URL:      envStr("DETECTOR_URL", "http://localhost:9400"),
			MaxFaces: envInt("DETECTOR_MAX_FACES", 10),
		},
		Web: WebConfig{
			Host: envStr("WEB_HOST", "0.0.0.0"),
			Port: envInt("WEB_PORT", 8080),
		},
		Assets: AssetsConfig{
			Dir: os.Getenv("ASSETS_DIR"),
		},
		Tuning: tuning.Tuning,
	}
}
