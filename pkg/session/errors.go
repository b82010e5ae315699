package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/srcedit/pkg/fsutil"
)

// Session error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the parser could not produce a tree.
	ErrParseFailure = errors.New("parse failure")

	// ErrSyntaxErrors indicates the tree contains error nodes and the
	// session was told to refuse such files.
	ErrSyntaxErrors = errors.New("source has syntax errors")

	// ErrNotJava indicates the file does not look like Java source.
	ErrNotJava = errors.New("not a java source file")

	// ErrWriteFailure indicates the new content could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// categorizeError wraps a read error with the matching session error.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsIOError reports whether err came from reading or writing the file
// rather than from the transformation itself.
func IsIOError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure) ||
		errors.Is(err, fsutil.ErrIsDirectory)
}
