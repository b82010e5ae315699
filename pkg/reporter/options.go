package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/srcedit/pkg/config"
	"github.com/yaklabco/srcedit/pkg/session"
)

// bufWriterSize sizes the buffered writer every reporter writes through.
const bufWriterSize = 64 * 1024

// Format selects a reporter. It shares its values with the config file's format key.
type Format = config.OutputFormat

const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
	FormatDiff = config.FormatDiff
)

// ParseFormat maps a --format value to a Format; empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	if f := Format(s); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s, %s, %s", s, FormatText, FormatJSON, FormatDiff)
}

// Options configures a reporter.
type Options struct {
	Writer io.Writer
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowSummary adds the totals line after the per-operation output.
	ShowSummary bool

	// Compact writes single-line JSON.
	Compact bool

	// WorkingDir, when set, is used to shorten absolute paths in output.
	WorkingDir string

	// Metrics, when set, is included in the JSON document.
	Metrics *session.Snapshot
}

// DefaultOptions writes summarized text to stdout.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
