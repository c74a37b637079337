package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/rpinject/internal/inject"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorPath string // build descriptor (.hcl, .yaml, .toml, .json)
	ArtifactsPath  string // resolver manifest, optional
	TestOutputDir  string // overrides the descriptor's test output directory
	OutputPath     string // effective descriptor is written here when set

	Mode   inject.Mode
	Dedupe bool

	LogFormat string
	LogLevel  string
}

var logFormats = []string{"text", "json"}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}

	if cfg.Mode == "" {
		cfg.Mode = inject.ModeAuto
	}
	mode, err := inject.ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}

	return &cfg, nil
}
