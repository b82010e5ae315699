package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcedit/pkg/runner"
	"github.com/yaklabco/srcedit/pkg/session"
)

// Exit codes for srcedit.
const (
	// ExitSuccess indicates every operation ran without error.
	ExitSuccess = 0

	// ExitOperationsFailed indicates at least one operation failed.
	ExitOperationsFailed = 1

	// ExitNothingChanged indicates no operation changed any file (with --strict).
	ExitNothingChanged = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or plan file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates every failure was a file I/O error.
	ExitIOError = 74
)

var (
	// ErrOperationsFailed signals failed operations; details are in the report.
	ErrOperationsFailed = errors.New("operations failed")

	// ErrNothingChanged signals a strict run that changed nothing.
	ErrNothingChanged = errors.New("nothing changed")
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitOperationsFailed
}

// IsReported reports whether err only signals an outcome already shown in
// the command's output.
func IsReported(err error) bool {
	return errors.Is(err, ErrOperationsFailed) || errors.Is(err, ErrNothingChanged)
}

func usageError(err error) error {
	return &ExitError{Code: ExitInvalidUsage, Err: err}
}

func configError(err error) error {
	return &ExitError{Code: ExitConfigError, Err: err}
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(fmt.Errorf("%s: %w", cmd.CommandPath(), err))
		}
		return nil
	}
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		for _, outcome := range result.Outcomes {
			if outcome.Error != nil && !session.IsIOError(outcome.Error) {
				return ExitOperationsFailed
			}
		}
		return ExitIOError
	}

	if strict && result.NothingChanged() {
		return ExitNothingChanged
	}

	return ExitSuccess
}
