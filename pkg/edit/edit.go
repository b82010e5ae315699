// Package edit provides anchored text edits and the logic that resolves,
// orders, and splices them into a source text.
package edit

import (
	"fmt"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Kind selects how an edit's anchor maps to a splice point.
type Kind int

const (
	// InsertBefore inserts the payload immediately before the anchor.
	InsertBefore Kind = iota + 1

	// InsertAfter inserts the payload immediately after the anchor's last character.
	InsertAfter

	// InsertLineAfter inserts the payload at the start of the line following the anchor.
	InsertLineAfter

	// Replace deletes the anchor's exact span and splices in the payload.
	Replace

	// InsertAfterNeedle inserts the payload after the first occurrence of the
	// needle found scanning forward from the anchor's second character.
	InsertAfterNeedle

	// InsertAtBlockEnd inserts the payload before the last "}" at or before
	// the position just past the anchor.
	InsertAtBlockEnd
)

var kindNames = map[Kind]string{
	InsertBefore:      "insert-before",
	InsertAfter:       "insert-after",
	InsertLineAfter:   "insert-line-after",
	Replace:           "replace",
	InsertAfterNeedle: "insert-after-needle",
	InsertAtBlockEnd:  "insert-at-block-end",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// blockEnd is the closing delimiter searched for by InsertAtBlockEnd.
const blockEnd = "}"

// Edit is one declarative text splice tied to an anchor node.
// The anchor's positions are only meaningful against the text the
// anchor's tree was parsed from.
type Edit struct {
	Kind   Kind
	Anchor *syntax.Node

	// Text is the payload to insert or replace with.
	Text string

	// Needle is the search target for InsertAfterNeedle.
	Needle string
}

func (e Edit) String() string {
	if e.Anchor.IsSynthetic() {
		return fmt.Sprintf("%s at <synthetic>", e.Kind)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Anchor.Begin())
}

// Batch is an unordered collection of edits over one text.
type Batch []Edit

// Builder accumulates edits for one text.
type Builder struct {
	edits Batch
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{edits: make(Batch, 0)}
}

// Add appends prepared edits.
func (b *Builder) Add(edits ...Edit) *Builder {
	b.edits = append(b.edits, edits...)
	return b
}

// InsertBefore adds an edit inserting text before anchor.
func (b *Builder) InsertBefore(anchor *syntax.Node, text string) *Builder {
	return b.Add(Edit{Kind: InsertBefore, Anchor: anchor, Text: text})
}

// InsertAfter adds an edit inserting text after anchor.
func (b *Builder) InsertAfter(anchor *syntax.Node, text string) *Builder {
	return b.Add(Edit{Kind: InsertAfter, Anchor: anchor, Text: text})
}

// InsertLineAfter adds an edit inserting text at the start of the line after anchor.
func (b *Builder) InsertLineAfter(anchor *syntax.Node, text string) *Builder {
	return b.Add(Edit{Kind: InsertLineAfter, Anchor: anchor, Text: text})
}

// Replace adds an edit replacing anchor's span with text.
func (b *Builder) Replace(anchor *syntax.Node, text string) *Builder {
	return b.Add(Edit{Kind: Replace, Anchor: anchor, Text: text})
}

// InsertAfterNeedle adds an edit inserting text after the first needle inside anchor.
func (b *Builder) InsertAfterNeedle(anchor *syntax.Node, needle, text string) *Builder {
	return b.Add(Edit{Kind: InsertAfterNeedle, Anchor: anchor, Needle: needle, Text: text})
}

// InsertAtBlockEnd adds an edit inserting text before anchor's closing brace.
func (b *Builder) InsertAtBlockEnd(anchor *syntax.Node, text string) *Builder {
	return b.Add(Edit{Kind: InsertAtBlockEnd, Anchor: anchor, Text: text})
}

// Len returns the number of accumulated edits.
func (b *Builder) Len() int {
	return len(b.edits)
}

// Batch returns the accumulated edits.
func (b *Builder) Batch() Batch {
	return b.edits
}
