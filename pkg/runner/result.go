package runner

import "github.com/yaklabco/srcedit/pkg/session"

// Outcome is the result of one job.
type Outcome struct {
	// Index is the job's position in the input.
	Index int

	// Path is the target file.
	Path string

	// Op is the job label.
	Op string

	// Result is nil when Error is set.
	Result *session.FileResult

	// Error is set if the operation failed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Operations is the number of jobs run.
	Operations int

	// FilesModified is the number of distinct files written.
	FilesModified int

	// Changed is the number of operations that changed their file's text,
	// written or pending in dry-run mode.
	Changed int

	// NoOps is the number of operations that left the text unchanged.
	NoOps int

	// Skipped is the number of operations refused by a safety check.
	Skipped int

	// Errored is the number of failed operations.
	Errored int

	// EditsApplied is the total number of edits applied.
	EditsApplied int
}

// Result is the overall runner result.
type Result struct {
	// Outcomes holds one entry per job, in input order.
	Outcomes []Outcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any operation failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errored > 0
}

// NothingChanged reports whether no operation changed any text.
func (r *Result) NothingChanged() bool {
	if r == nil {
		return true
	}
	return r.Stats.Changed == 0
}

func (r *Result) accumulate(outcome Outcome, modified map[string]bool) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Stats.Operations++

	if outcome.Error != nil {
		r.Stats.Errored++
		return
	}

	res := outcome.Result
	if res == nil {
		return
	}

	switch res.Outcome() {
	case session.OutcomeSkipped:
		r.Stats.Skipped++
	case session.OutcomeChanged:
		r.Stats.Changed++
	default:
		r.Stats.NoOps++
	}

	if res.Result != nil {
		r.Stats.EditsApplied += res.Applied
	}

	if res.Written && !modified[outcome.Path] {
		modified[outcome.Path] = true
		r.Stats.FilesModified++
	}
}
