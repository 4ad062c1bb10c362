package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how asset references are emitted.
type Mode string

const (
	// ModeStatic emits every asset as a literal root-relative path string.
	ModeStatic Mode = "static"
	// ModeURL emits every asset as an expression resolved against the
	// generated module's own URL when that module is loaded.
	ModeURL Mode = "url"
)

const (
	// DefaultFileName is the config file looked up in the project root.
	DefaultFileName = "assetgen.yaml"
	// DefaultInclude matches common raster and vector image extensions.
	DefaultInclude = `(?i)\.(png|jpe?g|gif|webp|svg)$`
	// DefaultAssetsDir is the scanned directory, relative to the project root.
	DefaultAssetsDir = "src/assets"
	// DefaultOutputFilePath is the generated module, relative to the project root.
	DefaultOutputFilePath = "src/assets/assets.ts"
	// DefaultExportName is the name of the exported binding.
	DefaultExportName = "Assets"
)

// ErrConfiguration is the sentinel wrapped by ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an option that cannot be used. It is raised
// before any directory is scanned.
type ConfigurationError struct {
	// Field is the YAML name of the offending option.
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns ErrConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// Config represents the structure parsed from assetgen.yaml. Every field is
// optional; ApplyDefaults fills in what is missing.
type Config struct {
	// Include is a regular expression tested against bare filenames.
	Include string `yaml:"include"`
	// AssetsDir is the directory to scan.
	AssetsDir string `yaml:"assetsDir"`
	// OutputFilePath is where the generated module is written.
	OutputFilePath string `yaml:"outputFilePath"`
	// Mode is the emission mode ("static" or "url").
	Mode Mode `yaml:"mode"`
	// ExportName is the identifier bound to the map and exported by default.
	ExportName string `yaml:"exportName"`
	// SplitWhitespace makes whitespace a key delimiter as well.
	SplitWhitespace bool `yaml:"splitWhitespace"`
	// KeepEmptyDirs keeps directories without matched files as empty objects.
	KeepEmptyDirs bool `yaml:"keepEmptyDirs"`
	// Readonly appends "as const" to the emitted literal.
	Readonly bool `yaml:"readonly"`
	// Banner prepends a "Code generated" comment. Defaults to true.
	Banner *bool `yaml:"banner"`
	// StrictKeys turns empty or duplicate keys into errors.
	StrictKeys bool `yaml:"strictKeys"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// exportNamePattern accepts plain JavaScript identifiers.
var exportNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks the configuration for values that can never work, such as
// an include pattern that does not compile or an unknown mode.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: A *ConfigurationError if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Include != "" {
		if _, err := regexp.Compile(config.Include); err != nil {
			return &ConfigurationError{Field: "include", Err: fmt.Errorf("invalid pattern: %w", err)}
		}
	}

	if config.AssetsDir != "" && strings.TrimSpace(config.AssetsDir) == "" {
		return &ConfigurationError{Field: "assetsDir", Err: errors.New("path must not be whitespace-only")}
	}
	if config.OutputFilePath != "" && strings.TrimSpace(config.OutputFilePath) == "" {
		return &ConfigurationError{Field: "outputFilePath", Err: errors.New("path must not be whitespace-only")}
	}

	switch config.Mode {
	case "", ModeStatic, ModeURL:
		// ok
	default:
		return &ConfigurationError{Field: "mode", Err: fmt.Errorf("invalid mode: %s (allowed: %s, %s)", config.Mode, ModeStatic, ModeURL)}
	}

	if config.ExportName != "" && !exportNamePattern.MatchString(config.ExportName) {
		return &ConfigurationError{Field: "exportName", Err: fmt.Errorf("%q is not a valid identifier", config.ExportName)}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return &ConfigurationError{Field: "logging.level", Err: fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)}
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Include == "" {
		config.Include = DefaultInclude
	}
	if config.AssetsDir == "" {
		config.AssetsDir = DefaultAssetsDir
	}
	if config.OutputFilePath == "" {
		config.OutputFilePath = DefaultOutputFilePath
	}
	if config.Mode == "" {
		config.Mode = ModeStatic
	}
	if config.ExportName == "" {
		config.ExportName = DefaultExportName
	}
	if config.Banner == nil {
		t := true
		config.Banner = &t
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Clone returns a deep copy of c. Pointer fields are not shared.
func (c *Config) Clone() *Config {
	out := *c
	if c.Banner != nil {
		b := *c.Banner
		out.Banner = &b
	}
	return &out
}

// BannerEnabled reports whether the generated-code header is emitted.
func (c *Config) BannerEnabled() bool {
	return c.Banner == nil || *c.Banner
}
