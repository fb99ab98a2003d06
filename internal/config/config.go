package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log        LogConfig     `yaml:"log"`
	Background string        `yaml:"background"`
	Window     WindowConfig  `yaml:"window"`
	Logging    LoggingConfig `yaml:"logging"`
}

// LogConfig points at the workout log file.
type LogConfig struct {
	Path string `yaml:"path" env:"TRACKER_LOG_PATH"`
}

type WindowConfig struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	MinWidth  float32 `yaml:"min_width"`
	MinHeight float32 `yaml:"min_height"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"TRACKER_LOG_LEVEL"`
	JSON  bool   `yaml:"json" env:"TRACKER_JSON_LOGS"`
}

// Default returns the settings the tracker runs with when nothing is configured.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Path: "workout_log.csv"},
		Background: "gym_background.gif",
		Window: WindowConfig{
			Width:     720,
			Height:    520,
			MinWidth:  620,
			MinHeight: 480,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load starts from Default, overlays the YAML file at path when one is given,
// then applies environment variable overrides:
//
//	TRACKER_LOG_PATH, TRACKER_BACKGROUND,
//	TRACKER_LOG_LEVEL, TRACKER_JSON_LOGS
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides lets set variables win over the file. TRACKER_BACKGROUND
// may be set to an empty value to turn the background off.
func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v, ok := os.LookupEnv("TRACKER_BACKGROUND"); ok {
		cfg.Background = v
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Log.Path) == "" {
		return fmt.Errorf("log.path is required")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	if c.Window.MinWidth > c.Window.Width || c.Window.MinHeight > c.Window.Height {
		return fmt.Errorf("window minimum size exceeds window size")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
