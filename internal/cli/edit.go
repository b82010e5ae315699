package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/plan"
	"github.com/yaklabco/srcedit/pkg/runner"
)

type addFlags struct {
	runFlags
	createLine int
	attachLine int
	where      string
	component  string
	args       []string
}

func newAddCommand() *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Add a component next to or inside an existing one",
		Long: `Add a new component, declared and attached next to a reference component.

The reference is the component created on --create-line and attached (passed
to add(...)) on --attach-line. With --where before or after, the new
component is declared above the attach statement and passed just before or
after the reference. With --where inside and a line that holds no statement,
such as a class header, the component is added to the class constructor,
which is created if the class has none.

Examples:
  srcedit add src/main/java/org/example/MainView.java \
      --create-line 17 --attach-line 29 --where after --arg "Click me"
  srcedit add MainView.java --create-line 7 --attach-line 7 --where inside \
      --component textfield --arg Name`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := plan.Operation{
				Op:         plan.OpAdd,
				Where:      flags.where,
				CreateLine: flags.createLine,
				AttachLine: flags.attachLine,
				Component:  flags.component,
				Args:       flags.args,
			}
			return execute(cmd, &flags.runFlags, singleOperation(args[0], op))
		},
	}

	cmd.Flags().IntVar(&flags.createLine, "create-line", 0, "line creating the reference component")
	cmd.Flags().IntVar(&flags.attachLine, "attach-line", 0, "line attaching the reference component")
	cmd.Flags().StringVar(&flags.where, "where", "after", "placement: before, after, inside")
	cmd.Flags().StringVar(&flags.component, "component", "button", "component type to add")
	cmd.Flags().StringArrayVar(&flags.args, "arg", nil, "constructor argument (repeatable)")
	addRunFlags(cmd, &flags.runFlags)

	return cmd
}

type setFlags struct {
	runFlags
	line      int
	component string
	method    string
	value     string
}

func newSetCommand() *cobra.Command {
	flags := &setFlags{}

	cmd := &cobra.Command{
		Use:   "set FILE",
		Short: "Set a property of an existing component",
		Long: `Set a property of the component created on --line.

When the property is the one the constructor takes, such as a Button's text
or a TextField's label, the constructor argument is replaced. Otherwise an
existing call to the setter right after the creation is replaced, or a new
call is inserted.

Examples:
  srcedit set MainView.java --line 18 --value "Say hi"
  srcedit set MainView.java --line 16 --component textfield --value "Your name"
  srcedit set MainView.java --line 18 --method setTooltipText --value Hint`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := plan.Operation{
				Op:         plan.OpSet,
				CreateLine: flags.line,
				Component:  flags.component,
				Method:     flags.method,
				Value:      flags.value,
			}
			return execute(cmd, &flags.runFlags, singleOperation(args[0], op))
		},
	}

	cmd.Flags().IntVar(&flags.line, "line", 0, "line creating the component")
	cmd.Flags().StringVar(&flags.component, "component", "button", "component type")
	cmd.Flags().StringVar(&flags.method, "method", "", "setter to call (default: the type's constructor property)")
	cmd.Flags().StringVar(&flags.value, "value", "", "string value to set")
	addRunFlags(cmd, &flags.runFlags)

	return cmd
}

// singleOperation prepares a one-operation plan against file.
func singleOperation(file string, op plan.Operation) prepareFunc {
	return func(_ context.Context, registry *component.Registry) ([]runner.Job, error) {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolve path: %w", err)
		}
		op.File = abs

		if op.Op == plan.OpSet && op.Method == "" {
			if typ, err := registry.Lookup(op.Component); err == nil {
				op.Method = typ.Property
			}
		}

		p := &plan.Plan{Operations: []plan.Operation{op}}
		if err := p.Validate(registry); err != nil {
			return nil, usageError(err)
		}

		return runner.JobsFromPlan(p, registry), nil
	}
}
