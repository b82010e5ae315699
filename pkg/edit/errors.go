package edit

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks a malformed edit batch: a construction bug in the
// code that built it, never a runtime condition worth retrying.
var ErrPrecondition = errors.New("edit precondition violated")

// Precondition violations.
var (
	ErrUnresolvableAnchor = fmt.Errorf("%w: anchor has no source position", ErrPrecondition)
	ErrForeignAnchor      = fmt.Errorf("%w: anchor belongs to a different tree", ErrPrecondition)
	ErrUnknownKind        = fmt.Errorf("%w: unknown edit kind", ErrPrecondition)
	ErrEmptyNeedle        = fmt.Errorf("%w: empty needle", ErrPrecondition)
	ErrPositionOutOfRange = fmt.Errorf("%w: position out of range", ErrPrecondition)
)

// Search failures for InsertAfterNeedle and InsertAtBlockEnd.
var (
	ErrNeedleNotFound   = errors.New("needle not found")
	ErrBlockEndNotFound = errors.New("closing brace not found")
)

// Error reports a failure applying one edit.
type Error struct {
	Edit Edit
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("apply %s: %v", e.Edit, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether err signals a malformed edit batch.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
