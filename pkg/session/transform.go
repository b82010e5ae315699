// Package session runs one transformation over one source text: parse once,
// build an edit batch against the tree, apply it bottom-up, and report the
// new text. TransformFile adds the file-system side around that core.
package session

import (
	"context"
	"fmt"

	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Parser turns source text into a syntax tree.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*syntax.Tree, error)
}

// BuildFunc produces the edits for one transformation. It is called exactly
// once, with the tree parsed from the text being transformed, and every
// anchor it returns must come from that tree.
type BuildFunc func(tree *syntax.Tree) (edit.Batch, error)

// Result is the outcome of a transformation on in-memory text.
type Result struct {
	// Changed is false when the edits left the text byte-for-byte identical,
	// including the case of an empty batch.
	Changed bool

	// Text is the transformed text; equal to Original when nothing changed.
	Text string

	// Original is the input text.
	Original string

	// Edits is the batch in application order.
	Edits edit.Batch

	// Applied counts edits applied.
	Applied int

	// Ties lists edits that shared an anchor begin position.
	Ties []edit.Tie

	// SyntaxErrors is set when the input did not parse cleanly.
	SyntaxErrors bool
}

// Transform parses src, builds the batch, and applies it. On any error the
// returned result is nil and src is to be considered unchanged.
func Transform(ctx context.Context, parser Parser, src string, build BuildFunc) (*Result, error) {
	return transform(ctx, parser, src, build, false)
}

func transform(ctx context.Context, parser Parser, src string, build BuildFunc, refuseSyntaxErrors bool) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("transform cancelled: %w", err)
	}

	tree, err := parser.Parse(ctx, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	if refuseSyntaxErrors && tree.HasErrors {
		return nil, ErrSyntaxErrors
	}

	batch, err := build(tree)
	if err != nil {
		return nil, fmt.Errorf("build edits: %w", err)
	}

	if err := edit.Validate(batch, tree); err != nil {
		return nil, err
	}

	sorted := edit.Sort(batch)
	text, applied, err := edit.ApplyAll(sorted, src)
	if err != nil {
		return nil, err
	}

	return &Result{
		Changed:      text != src,
		Text:         text,
		Original:     src,
		Edits:        sorted,
		Applied:      applied,
		Ties:         edit.Ties(sorted),
		SyntaxErrors: tree.HasErrors,
	}, nil
}
