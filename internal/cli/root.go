// Package cli implements the tracefire CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tracefire",
	Short: "Browse an AI agent's model-invocation history",
	Long: `Tracefire records and browses an AI agent's model invocations:
LLM calls, transcriptions, image generations and the rest. The viewer is a
full-screen terminal UI with filtering, search and date grouping; the serve
command runs the companion service that holds the history.`,
	// Bare `tracefire` opens the viewer.
	RunE:          runView,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("Error:"), err)
		return err
	}
	return nil
}

func init() {
	// The viewer flags also apply to the bare root invocation.
	addViewFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
}
