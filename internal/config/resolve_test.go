package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	r, err := Resolve(fs, &Config{}, "/proj")
	require.NoError(t, err)

	assert.Equal(t, "/proj", r.ProjectRoot)
	assert.Equal(t, filepath.Join("/proj", "src", "assets"), r.AssetsDir)
	assert.Equal(t, filepath.Join("/proj", "src", "assets", "assets.ts"), r.OutputFilePath)
	assert.Equal(t, ModeStatic, r.Mode)
	assert.Equal(t, "Assets", r.ExportName)
	assert.True(t, r.Banner)

	assert.True(t, r.Include.MatchString("photo.JPG"))
	assert.True(t, r.Include.MatchString("a.jpeg"))
	assert.True(t, r.Include.MatchString("b.webp"))
	assert.False(t, r.Include.MatchString("notes.txt"))
	assert.False(t, r.Include.MatchString("assets.ts"))
	assert.False(t, r.Include.MatchString("logo.svg.bak"))
}

func TestResolve_AbsolutePathsKept(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &Config{AssetsDir: "/proj/public/img/", OutputFilePath: "out/gen.ts"}

	r, err := Resolve(fs, cfg, "/proj/")
	require.NoError(t, err)

	assert.Equal(t, "/proj/public/img", r.AssetsDir)
	assert.Equal(t, filepath.Join("/proj", "out", "gen.ts"), r.OutputFilePath)
	assert.Empty(t, cfg.Include, "Resolve must not modify its input")
}

func TestResolve_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj/src/assets/assets.ts", 0o755))

	tests := []struct {
		name  string
		cfg   Config
		root  string
		field string
	}{
		{name: "relative root", cfg: Config{}, root: "proj", field: "projectRoot"},
		{name: "empty root", cfg: Config{}, root: "", field: "projectRoot"},
		{name: "bad pattern", cfg: Config{Include: "["}, root: "/proj", field: "include"},
		{name: "output is a directory", cfg: Config{}, root: "/proj", field: "outputFilePath"},
		{name: "assets dir outside root", cfg: Config{AssetsDir: "/elsewhere/img"}, root: "/proj", field: "assetsDir"},
		{name: "assets dir escapes root", cfg: Config{AssetsDir: "../shared"}, root: "/proj", field: "assetsDir"},
		{name: "output equals assets dir", cfg: Config{OutputFilePath: "img", AssetsDir: "img"}, root: "/proj", field: "outputFilePath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(fs, &tt.cfg, tt.root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/assetgen.yaml", []byte(`
include: '\.svg$'
assetsDir: public/icons
mode: url
exportName: Icons
splitWhitespace: true
banner: false
logging:
  level: debug
`), 0o644))

	cfg, err := Load(fs, "/proj/assetgen.yaml", true)
	require.NoError(t, err)

	assert.Equal(t, `\.svg$`, cfg.Include)
	assert.Equal(t, "public/icons", cfg.AssetsDir)
	assert.Equal(t, ModeURL, cfg.Mode)
	assert.Equal(t, "Icons", cfg.ExportName)
	assert.True(t, cfg.SplitWhitespace)
	assert.False(t, cfg.BannerEnabled())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "/proj/assetgen.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = Load(fs, "/proj/assetgen.yaml", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestLoad_InvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.yaml", []byte("include: [unclosed"), 0o644))

	_, err := Load(fs, "/a.yaml", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse /a.yaml")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAssetsDir:  "static/img",
		EnvMode:       "url",
		EnvOutputFile: "",
	}
	cfg := &Config{AssetsDir: "src/assets", OutputFilePath: "keep.ts"}

	ApplyEnv(cfg, func(k string) string { return env[k] })

	assert.Equal(t, "static/img", cfg.AssetsDir)
	assert.Equal(t, ModeURL, cfg.Mode)
	assert.Equal(t, "keep.ts", cfg.OutputFilePath)
}
