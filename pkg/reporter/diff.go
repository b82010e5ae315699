package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/srcedit/internal/ui/pretty"
	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/runner"
)

// DiffReporter prints each changed operation as a git-style unified diff,
// followed by a diffstat-like totals line.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Failed operations are listed inline; no-ops print nothing.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var changed, added, removed int
	for _, outcome := range result.Outcomes {
		path := displayPath(outcome.Path, r.opts.WorkingDir)

		if outcome.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path),
				r.styles.Error.Render("error: "+outcome.Error.Error()))
			continue
		}
		if outcome.Result == nil || !outcome.Result.Diff.HasChanges() {
			continue
		}

		d := outcome.Result.Diff
		changed++
		added += d.Additions
		removed += d.Deletions
		r.writeDiff(path, d)
	}

	if changed > 0 && r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.diffstat(changed, added, removed))
	}
	return changed, nil
}

// writeDiff prints d under path rather than the path the diff was generated with.
func (r *DiffReporter) writeDiff(path string, d *edit.Diff) {
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render("diff --git a/"+path+" b/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, h := range d.Hunks {
		fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)))
		for _, line := range h.Lines {
			fmt.Fprintln(r.bw, r.lineStyle(line.Kind).Render(string(line.Kind.Marker())+line.Content))
		}
	}
	fmt.Fprintln(r.bw)
}

func (r *DiffReporter) lineStyle(kind edit.DiffLineKind) lipgloss.Style {
	switch kind {
	case edit.DiffLineAdd:
		return r.styles.DiffAdd
	case edit.DiffLineRemove:
		return r.styles.DiffRemove
	default:
		return r.styles.DiffContext
	}
}

// diffstat renders "N operations with changes, A insertions(+), D deletions(-)".
func (r *DiffReporter) diffstat(operations, added, removed int) string {
	parts := []string{plural(operations, "operation") + " with changes"}
	if added > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(plural(added, "insertion")+"(+)"))
	}
	if removed > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(plural(removed, "deletion")+"(-)"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
