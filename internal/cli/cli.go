// Package cli implements the nodedex command-line interface.
//
// This package provides commands for querying the public Node.js release
// index: listing release identifiers, showing the metadata of a single
// release, and browsing releases interactively. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - list: Print release identifiers in chronological order
//   - info: Show the metadata of one release
//   - browse: Pick a release from an interactive list
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. The release index library itself never
// logs; all presentation happens here.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nodedex/nodedex/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "nodedex"

// Execute runs the nodedex CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into the logger, loads the
// optional TOML config file, and attaches both to the command context for
// subcommands to pick up.
func Execute(ctx context.Context) error {
	var verbose bool
	var cfgPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "nodedex answers what each Node.js release shipped with",
		Long:         `nodedex fetches the public Node.js release index once per run and answers lookups from memory: release dates, distributed files, bundled component versions, and LTS status.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			cmdCtx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(cmdCtx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.config/nodedex/config.toml)")

	root.AddCommand(newListCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newBrowseCmd())

	return root.ExecuteContext(ctx)
}
