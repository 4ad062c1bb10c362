package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/assetgen/assetgen/internal/config"
	applog "github.com/assetgen/assetgen/pkg/log"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// globalOptions are the persistent flags of the root command.
type globalOptions struct {
	root       string
	configFile string
	logLevel   string
	logFile    string
}

// session is the state shared by one command invocation: the filesystem,
// the absolute project root and the merged configuration.
type session struct {
	fs   afero.Fs
	root string
	cfg  *config.Config
}

// newSession resolves the project root, loads <root>/.env and the config
// file, applies ASSETGEN_* overrides and flag overrides, then sets up logging.
//
// Precedence, lowest first: defaults, config file, environment, flags.
func newSession(g globalOptions) (*session, error) {
	root := g.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &config.ConfigurationError{Field: "root", Err: err}
	}

	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	fsys := afero.NewOsFs()

	cfgPath, required := filepath.Join(root, config.DefaultFileName), false
	if g.configFile != "" {
		if cfgPath, err = filepath.Abs(g.configFile); err != nil {
			return nil, &config.ConfigurationError{Field: "config", Err: err}
		}
		required = true
	}
	cfg, err := config.Load(fsys, cfgPath, required)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg, os.Getenv)

	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFile != "" {
		cfg.Logging.Path = g.logFile
	}
	if err := applog.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return &session{fs: fsys, root: root, cfg: cfg}, nil
}

// resolve validates the merged configuration for a single run.
func (s *session) resolve() (*config.Resolved, error) {
	return config.Resolve(s.fs, s.cfg, s.root)
}

// rel shortens path for display when it lies below the project root.
func (s *session) rel(path string) string {
	r, err := filepath.Rel(s.root, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return path
	}
	return r
}
