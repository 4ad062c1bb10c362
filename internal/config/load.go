package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvInclude    = "ASSETGEN_INCLUDE"
	EnvAssetsDir  = "ASSETGEN_ASSETS_DIR"
	EnvOutputFile = "ASSETGEN_OUTPUT_FILE"
	EnvMode       = "ASSETGEN_MODE"
	EnvLogLevel   = "ASSETGEN_LOG_LEVEL"
)

// Load reads and parses the YAML config at path. When required is false a
// missing file yields an empty Config, since every option has a default.
func Load(fsys afero.Fs, path string, required bool) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, &ConfigurationError{Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	return &cfg, nil
}

// ApplyEnv overrides fields with the non-empty ASSETGEN_* variables returned
// by getenv.
func ApplyEnv(config *Config, getenv func(string) string) {
	if v := getenv(EnvInclude); v != "" {
		config.Include = v
	}
	if v := getenv(EnvAssetsDir); v != "" {
		config.AssetsDir = v
	}
	if v := getenv(EnvOutputFile); v != "" {
		config.OutputFilePath = v
	}
	if v := getenv(EnvMode); v != "" {
		config.Mode = Mode(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
}

// Marshal renders the config as YAML.
func Marshal(config *Config) ([]byte, error) {
	return yaml.Marshal(config)
}
