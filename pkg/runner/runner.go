package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/fsutil"
	"github.com/yaklabco/srcedit/pkg/session"
)

// Runner executes jobs through a Session.
type Runner struct {
	// Session performs each file transformation.
	Session *session.Session
}

// New creates a new Runner with the given session.
func New(s *session.Session) *Runner {
	return &Runner{Session: s}
}

// group is the ordered list of job indexes targeting one file.
type group struct {
	key     string
	indexes []int
}

// Run executes jobs and returns one outcome per job, in input order.
//
// Jobs are grouped by canonical path. Each group runs on one worker, in input
// order, so every operation sees the text left by the one before it. Groups
// run concurrently, at most opts.Jobs at a time.
func (r *Runner) Run(ctx context.Context, jobs []Job, opts Options) (*Result, error) {
	result := &Result{Outcomes: make([]Outcome, 0, len(jobs))}
	if len(jobs) == 0 {
		return result, nil
	}

	outcomes := make([]Outcome, len(jobs))
	done := make([]bool, len(jobs))
	groups := groupJobs(jobs, outcomes, done)

	workers := opts.Jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	logging.FromContext(ctx).Debug("running operations",
		logging.FieldOperations, len(jobs),
		logging.FieldPaths, len(groups),
		logging.FieldJobs, workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, grp := range groups {
		g.Go(func() error {
			return r.runGroup(gctx, jobs, grp, outcomes, done)
		})
	}
	err := g.Wait()

	// Build result in input order.
	modified := make(map[string]bool)
	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome, modified)
		}
	}

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// groupJobs buckets runnable jobs by canonical path in first-seen order.
// Jobs that already carry an error are recorded as finished outcomes.
func groupJobs(jobs []Job, outcomes []Outcome, done []bool) []group {
	var groups []group
	byKey := make(map[string]int)

	for i, job := range jobs {
		if job.Err != nil {
			outcomes[i] = Outcome{Index: i, Path: job.Path, Op: job.Label, Error: job.Err}
			done[i] = true
			continue
		}

		key, err := fsutil.CanonicalPath(job.Path)
		if err != nil {
			key = job.Path
		}

		pos, ok := byKey[key]
		if !ok {
			pos = len(groups)
			byKey[key] = pos
			groups = append(groups, group{key: key})
		}
		groups[pos].indexes = append(groups[pos].indexes, i)
	}

	return groups
}

// runGroup runs one file's jobs in order, writing only its own outcome slots.
// It returns the context error if cancelled between jobs.
func (r *Runner) runGroup(ctx context.Context, jobs []Job, grp group, outcomes []Outcome, done []bool) error {
	for _, i := range grp.indexes {
		if err := ctx.Err(); err != nil {
			return err
		}

		job := jobs[i]
		outcome := Outcome{Index: i, Path: job.Path, Op: job.Label}
		opCtx := logging.With(ctx, logging.FieldIndex, i, logging.FieldOp, job.Label)

		res, err := r.Session.TransformFile(opCtx, job.Path, job.Build)
		if err != nil {
			logging.FromContext(opCtx).Debug("operation failed", logging.FieldError, err)
			outcome.Error = err
		} else {
			outcome.Result = res
		}

		outcomes[i] = outcome
		done[i] = true
	}
	return nil
}
