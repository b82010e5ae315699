package edit_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// nodeOf returns a detached node spanning the nth (0-based) occurrence of
// fragment in text.
func nodeOf(t *testing.T, text, fragment string, nth int) *syntax.Node {
	t.Helper()

	offset := -1
	from := 0
	for range nth + 1 {
		idx := strings.Index(text[from:], fragment)
		if idx < 0 {
			t.Fatalf("fragment %q (occurrence %d) not found", fragment, nth)
		}
		offset = from + idx
		from = offset + len(fragment)
	}

	lines := syntax.BuildLines(text)
	_, size := utf8.DecodeLastRuneInString(fragment)

	return &syntax.Node{
		Type: "fragment",
		Span: syntax.Span{
			Begin: lines.LineAt(offset),
			End:   lines.LineAt(offset + len(fragment) - size),
		},
		StartByte: offset,
		EndByte:   offset + len(fragment),
	}
}

// treeOf wraps nodes under a synthetic root so they share one tree.
func treeOf(text string, nodes ...*syntax.Node) *syntax.Tree {
	lines := syntax.BuildLines(text)
	root := &syntax.Node{
		Type: "program",
		Span: syntax.Span{
			Begin: syntax.Position{Line: 1, Column: 1},
			End:   lines.LineAt(max(len(text)-1, 0)),
		},
		EndByte:  len(text),
		Children: nodes,
	}
	return syntax.NewTree(text, root)
}
