package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/pkg/component"
)

type componentsFlags struct {
	format string
}

const formatJSON = "json"

// componentInfo represents a component type in JSON output.
type componentInfo struct {
	Name     string `json:"name"`
	Class    string `json:"class"`
	Property string `json:"property,omitempty"`
}

func newComponentsCommand() *cobra.Command {
	flags := &componentsFlags{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List component types known to add and set",
		Long: `List the built-in component types and those registered in the
configuration, with their classes and constructor properties.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			registry, err := component.NewRegistry(cfg.Components...)
			if err != nil {
				return configError(err)
			}
			types := registry.Types()

			out := cmd.OutOrStdout()
			if flags.format == formatJSON {
				infos := make([]componentInfo, 0, len(types))
				for _, typ := range types {
					infos = append(infos, componentInfo{Name: typ.Name, Class: typ.ClassName, Property: typ.Property})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encoding components: %w", err)
				}
				return nil
			}

			for _, typ := range types {
				property := typ.Property
				if property == "" {
					property = "-"
				}
				fmt.Fprintf(out, "%-12s %-14s %s\n", typ.Name, property, typ.ClassName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}
