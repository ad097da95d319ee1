// Package cli implements the swissgrid command-line interface.
//
// This package provides commands for generating Swiss-style modular grid
// assets, listing the supported page formats, and deploying generated
// assets to a web host. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
//   - generate: Compute a grid and write the JSON, TXT, and PDF artifacts
//   - formats: List the supported A-series page formats
//   - deploy: Publish a directory of generated assets over SFTP
//
// Running swissgrid without a subcommand starts the interactive wizard
// when stdin is a terminal.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/longplay45/swissgrid/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "swissgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. Without a subcommand the root runs the interactive wizard.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Swissgrid generates Swiss-style modular grid layouts",
		Long:         `Swissgrid computes modular grid layouts for A-series pages following Müller-Brockmann's Grid Systems in Graphic Design (1981) and exports them as JSON, TXT, and PDF reference sheets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.deployCommand())
	root.AddCommand(c.completionCommand())

	return root
}
