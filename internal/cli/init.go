package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/internal/configloader"
	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new srcedit configuration file",
		Long: `Create a new .srcedit.yml configuration file in the current directory.

Examples:
  srcedit init                      Create a commented .srcedit.yml
  srcedit init --full               Write every setting and list component types
  srcedit init --output custom.yml  Write to a custom file path`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting with its default")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0], "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !configloader.IsInteractive(cmd.InOrStdin()) {
			return usageError(fmt.Errorf("file %q already exists; use --force to overwrite", flags.output))
		}
		ok, err := configloader.ConfirmOverwrite(flags.output, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldPath, flags.output)
			return nil
		}
	}

	registry, err := component.NewRegistry()
	if err != nil {
		return err
	}
	var components []config.ComponentConfig
	for _, typ := range registry.Types() {
		components = append(components, config.ComponentConfig{
			Name: typ.Name, Class: typ.ClassName, Property: typ.Property,
		})
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:       flags.full,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteConfig(absPath, content); err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'srcedit components' to see available component types")

	return nil
}
