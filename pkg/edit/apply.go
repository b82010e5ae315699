package edit

import (
	"fmt"
	"strings"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Apply applies one edit to text and returns the new text.
//
// The anchor is resolved against text as given, so when edits are applied
// in sequence the caller must order them with Sort first. Apply never looks
// at any other pending edit. A failed search or an unresolvable position
// returns an *Error and leaves text untouched.
func Apply(e Edit, text string) (string, error) {
	start, end, err := locate(e, text)
	if err != nil {
		return text, &Error{Edit: e, Err: err}
	}
	return text[:start] + e.Text + text[end:], nil
}

// locate returns the byte range [start, end) the edit's payload replaces.
// Insertions return an empty range.
func locate(e Edit, text string) (int, int, error) {
	if e.Anchor.IsSynthetic() {
		return 0, 0, ErrUnresolvableAnchor
	}

	begin, end := e.Anchor.Begin(), e.Anchor.End()

	switch e.Kind {
	case InsertBefore:
		return point(text, begin)

	case InsertAfter:
		return point(text, end.Right(1))

	case InsertLineAfter:
		if end.Line == strings.Count(text, "\n")+1 {
			// No next line to resolve: the payload goes at the end of text.
			last, err := Resolve(text, end)
			if err != nil {
				return 0, 0, err
			}
			if last >= len(text) {
				return 0, 0, fmt.Errorf("%w: %s is past the end of text", ErrPositionOutOfRange, end)
			}
			return len(text), len(text), nil
		}
		return point(text, end.NextLine())

	case Replace:
		from, err := Resolve(text, begin)
		if err != nil {
			return 0, 0, err
		}
		to, err := Resolve(text, end.Right(1))
		if err != nil {
			return 0, 0, err
		}
		return from, to, nil

	case InsertAfterNeedle:
		if e.Needle == "" {
			return 0, 0, ErrEmptyNeedle
		}
		from, err := Resolve(text, begin.Right(1))
		if err != nil {
			return 0, 0, err
		}
		idx := strings.Index(text[from:], e.Needle)
		if idx < 0 {
			return 0, 0, ErrNeedleNotFound
		}
		at := from + idx + len(e.Needle)
		return at, at, nil

	case InsertAtBlockEnd:
		from, err := Resolve(text, end.Right(1))
		if err != nil {
			return 0, 0, err
		}
		limit := min(from+len(blockEnd), len(text))
		idx := strings.LastIndex(text[:limit], blockEnd)
		if idx < 0 {
			return 0, 0, ErrBlockEndNotFound
		}
		return idx, idx, nil

	default:
		return 0, 0, ErrUnknownKind
	}
}

func point(text string, pos syntax.Position) (int, int, error) {
	at, err := Resolve(text, pos)
	if err != nil {
		return 0, 0, err
	}
	return at, at, nil
}

// ApplyAll sorts batch and folds Apply over it, threading the text through.
// It stops at the first failing edit and returns the number applied so far.
func ApplyAll(batch Batch, text string) (string, int, error) {
	current := text
	for i, e := range Sort(batch) {
		next, err := Apply(e, current)
		if err != nil {
			return text, i, err
		}
		current = next
	}
	return current, len(batch), nil
}
