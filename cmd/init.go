package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/assetgen/assetgen/internal/config"
	"github.com/assetgen/assetgen/internal/templates"
	"github.com/assetgen/assetgen/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initForce bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an assetgen.yaml with the default options",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runInit(afero.NewOsFs(), dir, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing assetgen.yaml")
	rootCmd.AddCommand(initCmd)
}

// runInit writes assetgen.yaml into dir and creates the default assets
// directory next to it if it does not exist yet.
//
// Parameters:
//   - fsys: The filesystem to write to.
//   - dir: The project directory. It must already exist.
//   - force: Overwrite an existing config file.
//
// Returns:
//   - error: An error if the config exists (and force is false) or a write fails.
func runInit(fsys afero.Fs, dir string, force bool) error {
	if ok, err := afero.DirExists(fsys, dir); err != nil || !ok {
		return fmt.Errorf("directory %s does not exist", dir)
	}

	cfgPath := filepath.Join(dir, config.DefaultFileName)
	if exists, _ := afero.Exists(fsys, cfgPath); exists && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	var cfg config.Config
	config.ApplyDefaults(&cfg)
	if err := generateFileFromTemplate(fsys, templates.ConfigScaffold, cfgPath, cfg); err != nil {
		return err
	}

	assetsDir := filepath.Join(dir, filepath.FromSlash(cfg.AssetsDir))
	if err := fsys.MkdirAll(assetsDir, 0755); err != nil {
		return err
	}

	ui.PrintHeader("Initialized")
	ui.PrintSuccess("Config", cfgPath)
	ui.PrintSuccess("Assets dir", assetsDir)
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
//
// Parameters:
//   - fsys: The filesystem to write to.
//   - tmplName: The name of the template file to use.
//   - destPath: The path where the generated file should be written.
//   - data: The data object to pass to the template.
//
// Returns:
//   - error: An error if the template cannot be read or executed.
func generateFileFromTemplate(fsys afero.Fs, tmplName, destPath string, data any) error {
	t, err := templates.Parse(tmplName, nil)
	if err != nil {
		return err
	}
	f, err := fsys.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}
