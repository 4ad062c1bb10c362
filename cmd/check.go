package cmd

import (
	"fmt"

	"github.com/assetgen/assetgen/internal/generator"
	"github.com/assetgen/assetgen/internal/ui"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the asset map module is up to date",
	Long: `Render the asset map and compare it with the file on disk without
writing anything. Exits with status 1 and prints a diff when they differ.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(globals)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck reports whether the generated module matches the assets on disk.
// A stale or missing module yields an *ExitError with code 1.
func runCheck(g globalOptions) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	resolved, err := s.resolve()
	if err != nil {
		return err
	}
	res, err := generator.Check(s.fs, resolved)
	if err != nil {
		return err
	}

	path := s.rel(res.Path)
	ui.PrintHeader("Asset map")
	switch {
	case res.UpToDate:
		ui.PrintSuccess("Up to date", path)
		return nil
	case res.Missing:
		ui.PrintError("Missing", path)
	default:
		ui.PrintError("Stale", path)
		ui.PrintDiff(res.Diff)
	}
	return &ExitError{Code: 1, Err: fmt.Errorf("%s is out of date, run 'assetgen generate'", path)}
}
