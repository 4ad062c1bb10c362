package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/assetgen/assetgen/internal/assetmap"
	"github.com/assetgen/assetgen/internal/config"
	"github.com/assetgen/assetgen/internal/templates"
	"github.com/spf13/afero"
)

// Result describes one generation run.
type Result struct {
	// Tree is the asset tree the output was rendered from.
	Tree *assetmap.Branch
	// Output is the rendered module text.
	Output []byte
	// Path is the absolute output file path.
	Path string
	// Assets is the number of files in the tree.
	Assets int
	// Degenerates lists empty or duplicate keys that were accepted.
	Degenerates []assetmap.Degenerate
}

// moduleData is passed to the asset module template.
type moduleData struct {
	Banner     bool
	ExportName string
	Readonly   bool
	Tree       *assetmap.Branch
}

// Generate scans the assets directory, renders the asset map module and
// writes it to the output path, replacing any previous content.
//
// Parameters:
//   - fsys: The filesystem to read assets from and write the module to.
//   - opts: Resolved options for this run.
//
// Returns:
//   - *Result: The tree and the text that was written.
//   - error: A *assetmap.FilesystemError if scanning or writing fails.
func Generate(fsys afero.Fs, opts *config.Resolved) (*Result, error) {
	res, err := Build(fsys, opts)
	if err != nil {
		return nil, err
	}
	if err := Write(fsys, res.Path, res.Output); err != nil {
		return nil, err
	}

	slog.Info("generated asset map", "path", res.Path, "assets", res.Assets, "mode", string(opts.Mode))
	return res, nil
}

// Build scans and renders without writing anything.
func Build(fsys afero.Fs, opts *config.Resolved) (*Result, error) {
	w := &assetmap.Walker{
		Fs:            fsys,
		ProjectRoot:   opts.ProjectRoot,
		Include:       opts.Include,
		Normalizer:    assetmap.Normalizer{SplitWhitespace: opts.SplitWhitespace},
		KeepEmptyDirs: opts.KeepEmptyDirs,
		Strict:        opts.StrictKeys,
	}

	slog.Debug("scanning assets", "dir", opts.AssetsDir, "include", opts.Include.String())
	walked, err := w.Walk(opts.AssetsDir)
	if err != nil {
		return nil, err
	}

	out, err := Render(walked.Tree, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:        walked.Tree,
		Output:      out,
		Path:        opts.OutputFilePath,
		Assets:      walked.Tree.CountLeaves(),
		Degenerates: walked.Degenerates,
	}, nil
}

// Render serializes tree into the text of the generated module. The same
// tree and options always produce the same bytes.
func Render(tree *assetmap.Branch, opts *config.Resolved) ([]byte, error) {
	data := moduleData{
		Banner:     opts.Banner,
		ExportName: opts.ExportName,
		Readonly:   opts.Readonly,
		Tree:       tree,
	}
	out, err := executeTemplate(templates.AssetModule, data, GetFuncMap(opts.Mode))
	if err != nil {
		return nil, fmt.Errorf("failed to render asset map: %w", err)
	}
	return out, nil
}

// Write creates or truncates path with data. The parent directory must exist.
func Write(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if ok, err := afero.DirExists(fsys, dir); err != nil || !ok {
		if err == nil {
			err = errors.New("parent directory " + dir + " does not exist")
		}
		return &assetmap.FilesystemError{Op: "write", Path: path, Err: err}
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return &assetmap.FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
