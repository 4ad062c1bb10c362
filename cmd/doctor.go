package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/assetgen/assetgen/internal/config"
	"github.com/assetgen/assetgen/internal/generator"
	"github.com/assetgen/assetgen/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project setup for problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(globals)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor runs every check and prints one line per check. It returns an
// *ExitError with code 1 when at least one check failed. Warnings do not fail.
func runDoctor(g globalOptions) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}

	ui.PrintHeader("Checking project...")
	failed := 0

	checkConfigFile(s, g)

	resolved, err := s.resolve()
	if err != nil {
		ui.PrintError("Options", err.Error())
		return &ExitError{Code: 1, Err: err}
	}
	ui.PrintSuccess("Options", fmt.Sprintf("mode=%s export=%s", resolved.Mode, resolved.ExportName))

	if !checkDir(s.fs, "Assets dir", resolved.AssetsDir) {
		failed++
	}
	if !checkDir(s.fs, "Output dir", filepath.Dir(resolved.OutputFilePath)) {
		failed++
	}

	if failed == 0 {
		if !checkOutput(s, resolved) {
			failed++
		}
	}

	if failed > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d check(s) failed", failed)}
	}
	return nil
}

// checkConfigFile reports where options come from. A missing default config
// file is fine since every option has a default.
func checkConfigFile(s *session, g globalOptions) {
	path := filepath.Join(s.root, config.DefaultFileName)
	if g.configFile != "" {
		path = g.configFile
	}
	if ok, _ := afero.Exists(s.fs, path); ok {
		ui.PrintSuccess("Config", s.rel(path))
		return
	}
	ui.PrintWarning("Config", "not found, using defaults")
}

func checkDir(fsys afero.Fs, label, dir string) bool {
	ok, err := afero.DirExists(fsys, dir)
	if err != nil || !ok {
		ui.PrintError(label, dir+" does not exist")
		return false
	}
	ui.PrintSuccess(label, dir)
	return true
}

// checkOutput scans the assets and compares the result with the output file.
// An outdated file is only a warning because generate fixes it.
func checkOutput(s *session, opts *config.Resolved) bool {
	res, err := generator.Check(s.fs, opts)
	if err != nil {
		ui.PrintError("Scan", err.Error())
		return false
	}
	ui.PrintSuccess("Scan", fmt.Sprintf("%d asset(s)", res.Assets))
	for _, d := range res.Degenerates {
		ui.PrintWarning("Key", d.String())
	}

	switch {
	case res.UpToDate:
		ui.PrintSuccess("Output", "up to date")
	case res.Missing:
		ui.PrintWarning("Output", "not generated yet")
	default:
		ui.PrintWarning("Output", "out of date, run 'assetgen generate'")
	}
	return true
}
