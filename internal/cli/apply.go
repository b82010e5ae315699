package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/plan"
	"github.com/yaklabco/srcedit/pkg/runner"
)

func newApplyCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "apply PLAN",
		Short: "Run the operations listed in a plan file",
		Long: `Run every operation in a YAML plan file.

Operations on the same file run in plan order, each against the text the
previous one left, so their line numbers must be written for that state.
Different files are edited in parallel.

Examples:
  srcedit apply plan.yml                 Apply the plan
  srcedit apply plan.yml --dry-run       Preview without writing
  srcedit apply plan.yml --dry-run --format diff
  srcedit apply plan.yml --format json   Machine-readable outcomes`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, flags, func(ctx context.Context, registry *component.Registry) ([]runner.Job, error) {
				return preparePlan(ctx, args[0], registry)
			})
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

func preparePlan(ctx context.Context, path string, registry *component.Registry) ([]runner.Job, error) {
	p, err := plan.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ExitError{Code: ExitIOError, Err: err}
		}
		return nil, configError(err)
	}

	if err := p.Validate(registry); err != nil {
		return nil, configError(err)
	}

	logging.FromContext(ctx).Debug("plan loaded",
		logging.FieldPlan, path,
		logging.FieldOperations, len(p.Operations),
	)

	return runner.JobsFromPlan(p, registry), nil
}
