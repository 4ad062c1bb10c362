package cmd

import (
	"io"

	"github.com/assetgen/assetgen/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration generate would use: defaults, then
assetgen.yaml, then ASSETGEN_* environment variables, then flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd.OutOrStdout(), globals)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(w io.Writer, g globalOptions) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	if err := config.Validate(s.cfg); err != nil {
		return err
	}
	cfg := *s.cfg
	config.ApplyDefaults(&cfg)
	data, err := config.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
