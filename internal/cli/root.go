// Package cli provides the Cobra command structure for srcedit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root srcedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "srcedit",
		Short: "Anchored edits to Java source files",
		Long: `srcedit applies small, targeted edits to Java source files: adding a
component next to an existing one, or changing a component's text or label.

Each operation parses the file once, anchors its edits to nodes of that
parse, and applies them bottom-up so earlier positions stay valid. Files are
replaced atomically, never written by two operations at once, and left
alone if they changed on disk while an operation ran.

` + environmentHelp(),
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

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	newHelpFormatter(&color, os.Stdout).apply(rootCmd)

	for _, cmd := range []*cobra.Command{newApplyCommand(), newAddCommand(), newSetCommand()} {
		cmd.GroupID = groupEdit
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newComponentsCommand(), newInitCommand(), newVersionCommand(info)} {
		cmd.GroupID = groupSetup
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}
