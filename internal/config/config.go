package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Everything has a working default; a config
// file and environment variables are both optional.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
}

// Load reads configuration in increasing precedence: an optional .env file,
// an optional yaml file at path (or the default location when path is
// empty), then the TASKDECK_DB environment variable.
func Load(path string) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{}

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No config file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if dbPath := os.Getenv("TASKDECK_DB"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	return cfg, nil
}

func defaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "taskdeck", "config.yaml")
}
