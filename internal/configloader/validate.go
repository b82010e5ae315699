package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/config"
	"github.com/yaklabco/srcedit/pkg/fsutil"
)

// ValidationError is one problem with a configuration value.
type ValidationError struct {
	// File is the config file the value came from, when known.
	File string

	// Field is the dotted key, e.g. "backups.mode" or "components[1]".
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File + ": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field + ": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// ValidationResult collects the findings of Validate.
// Errors make a configuration unusable; Warnings do not.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err joins the errors, or returns nil when the result is valid.
// Each joined error is a *ValidationError.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks every field of cfg. A nil config is valid.
func Validate(cfg *config.Config) *ValidationResult {
	r := &ValidationResult{}
	if cfg == nil {
		return r
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		r.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}
	if cfg.Jobs < 0 {
		r.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.LogLevel != "" {
		if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
			r.fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
		}
	}

	switch mode := fsutil.BackupMode(cfg.Backups.Mode); {
	case mode != "" && !IsValidBackupMode(cfg.Backups.Mode):
		r.fail("backups.mode", cfg.Backups.Mode, "invalid backup mode %q; must be one of: sidecar, none", mode)
	case cfg.Backups.Enabled && mode == fsutil.BackupModeNone:
		r.warn("backups", cfg.Backups.Mode, "backups are enabled with mode none; no backups will be written")
	}

	seen := make(map[string]bool, len(cfg.Components))
	for i, c := range cfg.Components {
		if key := strings.ToLower(c.Name); seen[key] {
			r.warn(fmt.Sprintf("components[%d].name", i), c.Name, "duplicate component %q; the last entry wins", c.Name)
		} else {
			seen[key] = true
		}
		if _, err := component.NewRegistry(c); err != nil {
			r.fail(fmt.Sprintf("components[%d]", i), c.Class, "%v", err)
		}
	}

	return r
}

// ValidateWithFile is Validate with every finding attributed to path.
func ValidateWithFile(cfg *config.Config, path string) *ValidationResult {
	r := Validate(cfg)
	for _, list := range [][]ValidationError{r.Errors, r.Warnings} {
		for i := range list {
			list[i].File = path
		}
	}
	return r
}

// IsValidBackupMode reports whether mode names a supported backup mode.
func IsValidBackupMode(mode string) bool {
	switch fsutil.BackupMode(mode) {
	case fsutil.BackupModeSidecar, fsutil.BackupModeNone:
		return true
	default:
		return false
	}
}
