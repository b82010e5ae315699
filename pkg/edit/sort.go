package edit

import (
	"fmt"
	"slices"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Sort returns a copy of batch ordered from the highest anchor position to
// the lowest: begin line descending, then begin column descending.
//
// Applying edits in this order on one mutating buffer never shifts the
// offset of an edit still pending, since every pending edit lies before the
// point just mutated. The sort is stable; edits sharing an identical anchor
// begin keep their batch order, see Ties.
func Sort(batch Batch) Batch {
	sorted := slices.Clone(batch)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return anchorBegin(b).Compare(anchorBegin(a))
	})
	return sorted
}

func anchorBegin(e Edit) syntax.Position {
	if e.Anchor == nil {
		return syntax.Position{}
	}
	return e.Anchor.Begin()
}

// Tie groups edits anchored at the same begin position.
type Tie struct {
	Position syntax.Position
	Edits    []Edit
}

func (t Tie) String() string {
	return fmt.Sprintf("%d edits at %s", len(t.Edits), t.Position)
}

// Ties reports groups of edits in a sorted batch whose anchors begin at the
// same position. Their relative order is whatever the builder produced.
func Ties(sorted Batch) []Tie {
	var ties []Tie
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && anchorBegin(sorted[j]) == anchorBegin(sorted[i]) {
			j++
		}
		if j-i > 1 {
			ties = append(ties, Tie{
				Position: anchorBegin(sorted[i]),
				Edits:    slices.Clone(sorted[i:j]),
			})
		}
		i = j
	}
	return ties
}

// Validate checks that every anchor in batch has a position inside tree and
// is owned by it. It returns the first violation as an *Error.
func Validate(batch Batch, tree *syntax.Tree) error {
	for _, e := range batch {
		if !e.Kind.IsValid() {
			return &Error{Edit: e, Err: ErrUnknownKind}
		}
		if e.Anchor.IsSynthetic() {
			return &Error{Edit: e, Err: ErrUnresolvableAnchor}
		}
		if !tree.Owns(e.Anchor) {
			return &Error{Edit: e, Err: ErrForeignAnchor}
		}
	}
	return nil
}
