package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/srcedit/pkg/runner"
	"github.com/yaklabco/srcedit/pkg/session"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version    string          `json:"version"`
	Operations []JSONOperation `json:"operations"`
	Summary    JSONSummary     `json:"summary"`

	// Metrics are the session totals read from the run's meter provider.
	Metrics *session.Snapshot `json:"metrics,omitempty"`
}

// JSONOperation represents a single operation's outcome.
type JSONOperation struct {
	Index         int      `json:"index"`
	Path          string   `json:"path"`
	Op            string   `json:"op"`
	Status        string   `json:"status"`
	Changed       bool     `json:"changed"`
	Written       bool     `json:"written,omitempty"`
	BackupCreated bool     `json:"backupCreated,omitempty"`
	Applied       int      `json:"applied"`
	Ties          []string `json:"ties,omitempty"`
	SkipReason    string   `json:"skipReason,omitempty"`
	Diff          string   `json:"diff,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Operations    int `json:"operations"`
	Changed       int `json:"changed"`
	FilesModified int `json:"filesModified"`
	NoOps         int `json:"noOps"`
	Skipped       int `json:"skipped"`
	Errored       int `json:"errored"`
	EditsApplied  int `json:"editsApplied"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Changed, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:    "1.0.0",
		Operations: make([]JSONOperation, 0),
		Metrics:    r.opts.Metrics,
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		Operations:    stats.Operations,
		Changed:       stats.Changed,
		FilesModified: stats.FilesModified,
		NoOps:         stats.NoOps,
		Skipped:       stats.Skipped,
		Errored:       stats.Errored,
		EditsApplied:  stats.EditsApplied,
	}

	for _, outcome := range result.Outcomes {
		op := JSONOperation{
			Index: outcome.Index,
			Path:  displayPath(outcome.Path, r.opts.WorkingDir),
			Op:    outcome.Op,
		}

		if outcome.Error != nil {
			op.Status = "error"
			op.Error = outcome.Error.Error()
			output.Operations = append(output.Operations, op)
			continue
		}

		if res := outcome.Result; res != nil {
			op.Status = res.Outcome()
			op.Written = res.Written
			op.BackupCreated = res.BackupCreated
			op.SkipReason = res.SkipReason
			if res.Result != nil {
				op.Changed = res.Changed
				op.Applied = res.Applied
				for _, tie := range res.Ties {
					op.Ties = append(op.Ties, tie.String())
				}
			}
			if res.Diff.HasChanges() {
				op.Diff = res.Diff.String()
			}
		}

		output.Operations = append(output.Operations, op)
	}

	return output
}
