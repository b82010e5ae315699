package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/srcedit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 operations: 2 changed in 1 file, 1 unchanged, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.Operations == 0 {
		return s.Dim.Render("No operations.") + "\n"
	}

	var details []string
	if stats.Changed > 0 {
		changed := fmt.Sprintf("%d changed", stats.Changed)
		if stats.FilesModified > 0 {
			changed += fmt.Sprintf(" in %d %s", stats.FilesModified, plural(stats.FilesModified, wordFile, wordFiles))
		}
		details = append(details, s.Success.Render(changed))
	}
	if stats.NoOps > 0 {
		details = append(details, s.Warning.Render(fmt.Sprintf("%d unchanged", stats.NoOps)))
	}
	if stats.Skipped > 0 {
		details = append(details, s.Warning.Render(fmt.Sprintf("%d skipped", stats.Skipped)))
	}
	if stats.Errored > 0 {
		details = append(details, s.Failure.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}

	return fmt.Sprintf("%d %s: %s\n",
		stats.Operations, plural(stats.Operations, "operation", "operations"),
		strings.Join(details, ", "))
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		fmt.Fprintf(&builder, "  %-19s%s\n", label+":", style(strconv.Itoa(value)))
	}

	row("Operations", stats.Operations, s.SummaryValue.Render)
	row("Changed", stats.Changed, s.Success.Render)
	row("Files modified", stats.FilesModified, s.Success.Render)
	row("Edits applied", stats.EditsApplied, s.SummaryValue.Render)
	if stats.NoOps > 0 {
		row("Unchanged", stats.NoOps, s.Warning.Render)
	}
	if stats.Skipped > 0 {
		row("Skipped", stats.Skipped, s.Warning.Render)
	}
	if stats.Errored > 0 {
		row("Failed", stats.Errored, s.Failure.Render)
	}

	builder.WriteString("\n")

	switch {
	case stats.Errored > 0:
		builder.WriteString(s.Failure.Render("Completed with failures"))
	case stats.Changed == 0:
		builder.WriteString(s.Warning.Render("Nothing changed"))
	default:
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}
