package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// Resolved holds the options of one generation run with defaults applied,
// the include pattern compiled and every path made absolute.
type Resolved struct {
	ProjectRoot     string
	Include         *regexp.Regexp
	AssetsDir       string
	OutputFilePath  string
	Mode            Mode
	ExportName      string
	SplitWhitespace bool
	KeepEmptyDirs   bool
	Readonly        bool
	Banner          bool
	StrictKeys      bool
}

// Resolve validates config and turns it into the options of a single run.
// projectRoot must be absolute; relative assetsDir and outputFilePath values
// are joined onto it. The config itself is not modified.
//
// Every failure is a *ConfigurationError, returned before anything is read
// from the assets directory.
func Resolve(fsys afero.Fs, config *Config, projectRoot string) (*Resolved, error) {
	if err := Validate(config); err != nil {
		return nil, err
	}
	if projectRoot == "" || !filepath.IsAbs(projectRoot) {
		return nil, &ConfigurationError{Field: "projectRoot", Err: fmt.Errorf("must be an absolute path, got %q", projectRoot)}
	}

	cfg := *config
	ApplyDefaults(&cfg)

	include, err := regexp.Compile(cfg.Include)
	if err != nil {
		return nil, &ConfigurationError{Field: "include", Err: fmt.Errorf("invalid pattern: %w", err)}
	}

	root := filepath.Clean(projectRoot)
	r := &Resolved{
		ProjectRoot:     root,
		Include:         include,
		AssetsDir:       resolvePath(root, cfg.AssetsDir),
		OutputFilePath:  resolvePath(root, cfg.OutputFilePath),
		Mode:            cfg.Mode,
		ExportName:      cfg.ExportName,
		SplitWhitespace: cfg.SplitWhitespace,
		KeepEmptyDirs:   cfg.KeepEmptyDirs,
		Readonly:        cfg.Readonly,
		Banner:          cfg.BannerEnabled(),
		StrictKeys:      cfg.StrictKeys,
	}

	if !within(root, r.AssetsDir) {
		return nil, &ConfigurationError{Field: "assetsDir", Err: fmt.Errorf("%s is outside the project root %s", r.AssetsDir, root)}
	}
	if fi, err := fsys.Stat(r.OutputFilePath); err == nil && fi.IsDir() {
		return nil, &ConfigurationError{Field: "outputFilePath", Err: errors.New(r.OutputFilePath + " is a directory")}
	}
	if r.OutputFilePath == r.AssetsDir {
		return nil, &ConfigurationError{Field: "outputFilePath", Err: errors.New("must not be the assets directory itself")}
	}

	return r, nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// within reports whether p is root or lies below it.
func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
