// Package cli implements the regionmap command-line interface.
//
// This package provides commands for resolving interactive region maps:
// rendering a definition to SVG or JSON, applying clicks to persisted
// states, serving a map over HTTP, and exploring one interactively in the
// terminal. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Resolve a map definition and write SVG or JSON output
//   - click: Apply clicks to a named persisted state
//   - serve: Host a map definition over HTTP
//   - explore: Interactive terminal explorer
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/mlenz/regionmap/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the regionmap CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "regionmap",
		Short:        "Regionmap resolves interactive region maps",
		Long:         `Regionmap is a CLI tool for interactive region maps: it applies clicks through a mode state machine and resolves layered partial styles into concrete per-region rendering output.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("regionmap %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newClickCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(context.Background())
}
