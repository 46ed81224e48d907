package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "WFS"
	appName      = "mkwfs"
)

type Config struct {
	LogLevel string `envconfig:"WFS_LOG_LEVEL" default:"info" yaml:"logLevel"`
	ImageDir string `envconfig:"WFS_IMAGE_DIR"                yaml:"imageDir"`
}

// LoadConfig reads the optional YAML config file (WFS_CONFIG_FILE, falling
// back to ~/.config/mkwfs.yaml) and then applies environment overrides.
func LoadConfig() (*Config, error) {
	configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE")
	if configFile == "" {
		configFile = filepath.Join(
			os.Getenv("HOME"),
			".config",
			appName+".yaml",
		)
	}

	var c Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling config file: %w", err)
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("parsing log level `%s`: %w", c.LogLevel, err)
	}
	return level, nil
}

// ResolvePath joins relative disk image paths onto the configured image
// directory. Absolute paths and the empty ImageDir pass through unchanged.
func (c *Config) ResolvePath(path string) string {
	if c.ImageDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ImageDir, path)
}
