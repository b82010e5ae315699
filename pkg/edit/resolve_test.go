package edit_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	const text = "ab\ncdé\n\nfg"

	tests := []struct {
		name string
		pos  syntax.Position
		want int
	}{
		{name: "first character", pos: syntax.Position{Line: 1, Column: 1}, want: 0},
		{name: "end of first line", pos: syntax.Position{Line: 1, Column: 3}, want: 2},
		{name: "second line start", pos: syntax.Position{Line: 2, Column: 1}, want: 3},
		{name: "column counts characters", pos: syntax.Position{Line: 2, Column: 4}, want: 7},
		{name: "empty line", pos: syntax.Position{Line: 3, Column: 1}, want: 8},
		{name: "last line", pos: syntax.Position{Line: 4, Column: 2}, want: 10},
		{name: "end of text", pos: syntax.Position{Line: 4, Column: 3}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := edit.Resolve(text, tt.pos)
			if err != nil {
				t.Fatalf("Resolve(%s) error = %v", tt.pos, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	t.Parallel()

	const text = "ab\ncd"

	for _, pos := range []syntax.Position{
		{},
		{Line: 0, Column: 1},
		{Line: 1, Column: 0},
		{Line: 3, Column: 1},
		{Line: 1, Column: 5},
		{Line: 2, Column: 4},
	} {
		_, err := edit.Resolve(text, pos)
		if !errors.Is(err, edit.ErrPositionOutOfRange) {
			t.Errorf("Resolve(%s) error = %v, want ErrPositionOutOfRange", pos, err)
		}
		if !edit.IsPrecondition(err) {
			t.Errorf("Resolve(%s) error should be a precondition violation", pos)
		}
	}
}

func FuzzResolve(f *testing.F) {
	f.Add("", 1, 1)
	f.Add("hello\nworld\n", 2, 3)
	f.Add("héllo\r\nwörld", 2, 6)
	f.Add("a\n\n\nb", 4, 1)

	f.Fuzz(func(t *testing.T, text string, line, column int) {
		offset, err := edit.Resolve(text, syntax.Position{Line: line, Column: column})
		if err != nil {
			return
		}
		if offset < 0 || offset > len(text) {
			t.Fatalf("offset %d outside [0, %d]", offset, len(text))
		}

		// The resolved offset stays on the requested line.
		lines := syntax.BuildLines(text)
		if got := lines.LineAt(offset); got.Line != line {
			t.Errorf("LineAt(%d).Line = %d, want %d", offset, got.Line, line)
		}
	})
}
