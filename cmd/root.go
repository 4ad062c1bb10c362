package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// globals holds the persistent flags shared by every subcommand.
	globals globalOptions
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "assetgen",
	Short: "Generate a typed key map of your static assets",
	Long: `assetgen scans an asset directory and writes a module that maps
normalized keys to asset paths, mirroring the folder structure.

Run it from a build hook (or go:generate) before bundling:
  assetgen generate          Write src/assets/assets.ts
  assetgen check             Fail if the generated file is out of date
  assetgen init              Create an assetgen.yaml with the defaults`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globals.root, "root", "", "project root that asset paths are relative to (default is the working directory)")
	flags.StringVar(&globals.configFile, "config", "", "config file (default is <root>/assetgen.yaml)")
	flags.StringVar(&globals.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&globals.logFile, "log-file", "", "write logs to this file instead of stderr")
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
