// Package cli provides the Cobra command structure for mdvet.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdvet/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdvet command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdvet",
		Short: "A line-oriented Markdown style validator",
		Long: `mdvet validates Markdown files against a battery of line-oriented
style checks: trailing whitespace, tab indentation, unlabeled code
fences, Setext headings, inconsistent list markers and more.

It never parses or rewrites documents; every check works on raw lines,
so results are fast and reproducible. Findings are reported per file
with the affected line numbers, and the exit status reflects whether
any error-severity issues were found.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newChecksCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
