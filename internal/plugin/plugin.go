// Package plugin exposes asset map generation as a build lifecycle hook.
package plugin

import (
	"fmt"

	"github.com/assetgen/assetgen/internal/config"
	"github.com/assetgen/assetgen/internal/generator"
	"github.com/spf13/afero"
)

// Name identifies the hook in host logs and errors.
const Name = "assetgen"

// Hook is a build-start lifecycle callback.
type Hook interface {
	Name() string
	BuildStart() error
}

// Plugin regenerates the asset map every time the build starts.
type Plugin struct {
	fs          afero.Fs
	cfg         config.Config
	projectRoot string

	// OnGenerated, when set, receives the result of each successful run.
	OnGenerated func(*generator.Result)
}

// New returns a Plugin for the project at projectRoot. cfg is copied; later
// changes to it are not seen by the plugin.
func New(fs afero.Fs, cfg *config.Config, projectRoot string) *Plugin {
	p := &Plugin{fs: fs, projectRoot: projectRoot}
	if cfg != nil {
		p.cfg = *cfg.Clone()
	}
	return p
}

// Name implements Hook.
func (p *Plugin) Name() string { return Name }

// BuildStart resolves the options, scans the assets directory and rewrites the
// output module. Each call starts from scratch.
func (p *Plugin) BuildStart() error {
	opts, err := config.Resolve(p.fs, &p.cfg, p.projectRoot)
	if err != nil {
		return err
	}
	res, err := generator.Generate(p.fs, opts)
	if err != nil {
		return err
	}
	if p.OnGenerated != nil {
		p.OnGenerated(res)
	}
	return nil
}

// RunBuildStart fires BuildStart on each hook in order, the way a host build
// tool does, and stops at the first failure.
func RunBuildStart(hooks ...Hook) error {
	for _, h := range hooks {
		if err := h.BuildStart(); err != nil {
			return fmt.Errorf("%s: buildStart: %w", h.Name(), err)
		}
	}
	return nil
}
