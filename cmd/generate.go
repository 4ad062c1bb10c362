package cmd

import (
	"fmt"
	"io"

	"github.com/assetgen/assetgen/internal/config"
	"github.com/assetgen/assetgen/internal/generator"
	"github.com/assetgen/assetgen/internal/plugin"
	"github.com/assetgen/assetgen/internal/ui"
	"github.com/spf13/cobra"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	mode   string
	stdout bool
	strict bool
}

var genOpts generateOptions

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the assets directory and write the asset map module",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout(), globals, genOpts)
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOpts.mode, "mode", "", "output mode: static or url (overrides config)")
	generateCmd.Flags().BoolVar(&genOpts.stdout, "stdout", false, "print the module instead of writing it")
	generateCmd.Flags().BoolVar(&genOpts.strict, "strict", false, "fail on empty or duplicate keys")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration and runs the build-start hook once,
// exactly as a host build tool would.
//
// Parameters:
//   - w: Where the module is printed when opts.stdout is set.
//   - g: Persistent root flags.
//   - opts: Flags of the generate command.
//
// Returns:
//   - error: A configuration, filesystem or key conflict error.
func runGenerate(w io.Writer, g globalOptions, opts generateOptions) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	if opts.mode != "" {
		s.cfg.Mode = config.Mode(opts.mode)
	}
	if opts.strict {
		s.cfg.StrictKeys = true
	}

	if opts.stdout {
		resolved, err := s.resolve()
		if err != nil {
			return err
		}
		res, err := generator.Build(s.fs, resolved)
		if err != nil {
			return err
		}
		_, err = w.Write(res.Output)
		return err
	}

	p := plugin.New(s.fs, s.cfg, s.root)
	p.OnGenerated = func(res *generator.Result) { reportResult(s, res) }
	return plugin.RunBuildStart(p)
}

func reportResult(s *session, res *generator.Result) {
	ui.PrintHeader("Asset map")
	ui.PrintSuccess("Written", s.rel(res.Path))
	ui.PrintSuccess("Assets", fmt.Sprintf("%d", res.Assets))
	for _, d := range res.Degenerates {
		ui.PrintWarning("Key", d.String())
	}
}
