// Package runner executes plan operations: operations on one file run in
// order on a single worker, distinct files run concurrently.
package runner

import (
	"fmt"

	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/plan"
	"github.com/yaklabco/srcedit/pkg/session"
)

// Options controls execution.
type Options struct {
	// Jobs controls the maximum number of concurrent file workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// Job is one operation ready to run.
type Job struct {
	// Path is the target file.
	Path string

	// Label describes the operation in reports.
	Label string

	// Build produces the operation's edits.
	Build session.BuildFunc

	// Err is set when the operation could not be prepared; the job is
	// reported as failed without touching the file.
	Err error
}

// JobsFromPlan prepares one job per plan operation, in plan order.
// Operations whose file or component cannot be resolved carry an Err.
func JobsFromPlan(p *plan.Plan, registry *component.Registry) []Job {
	jobs := make([]Job, len(p.Operations))
	for i, op := range p.Operations {
		job := Job{Label: op.String()}

		path, err := p.Path(i)
		if err != nil {
			job.Err = err
			jobs[i] = job
			continue
		}
		job.Path = path

		build, err := op.Build(registry)
		if err != nil {
			job.Err = fmt.Errorf("operations[%d]: %w", i, err)
		}
		job.Build = build
		jobs[i] = job
	}
	return jobs
}
