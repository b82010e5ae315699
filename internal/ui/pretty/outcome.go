package pretty

import (
	"fmt"

	"github.com/yaklabco/srcedit/pkg/runner"
)

// FormatOutcome formats one operation outcome as a single line:
//
//	path  status  operation
func (s *Styles) FormatOutcome(outcome runner.Outcome, displayPath string) string {
	status := s.FormatStatus(outcome)
	op := s.Op.Render("(" + outcome.Op + ")")

	if outcome.Error != nil {
		return fmt.Sprintf("  %s  %s  %s  %s\n",
			s.FilePath.Render(displayPath), status,
			s.Message.Render(outcome.Error.Error()), op)
	}

	detail := ""
	if res := outcome.Result; res != nil && res.Result != nil && res.Applied > 0 {
		word := "edits"
		if res.Applied == 1 {
			word = "edit"
		}
		detail = s.Location.Render(fmt.Sprintf(" [%d %s]", res.Applied, word))
	}

	return fmt.Sprintf("  %s  %s%s  %s\n", s.FilePath.Render(displayPath), status, detail, op)
}

// FormatStatus returns the styled status word for an outcome.
func (s *Styles) FormatStatus(outcome runner.Outcome) string {
	res := outcome.Result
	switch {
	case outcome.Error != nil:
		return s.Error.Render("error")
	case res == nil:
		return s.Dim.Render("unknown")
	case res.Skipped:
		return s.Skipped.Render(res.Summary())
	case res.Written:
		return s.Changed.Render(res.Summary())
	case res.Result != nil && res.Changed:
		return s.Pending.Render(res.Summary())
	default:
		return s.NoOp.Render(res.Summary())
	}
}
