package syntax

import "fmt"

// Position represents a 1-based line and column in a source text.
// Column counts characters (runes) within the line, not bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
// Synthetic nodes that were never placed in a source text carry the zero Position.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Right returns the position n columns to the right on the same line.
func (p Position) Right(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

// NextLine returns the first column of the following line.
func (p Position) NextLine() Position {
	return Position{Line: p.Line + 1, Column: 1}
}

// Compare orders positions by line, then column.
// It returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is an inclusive range of positions: End addresses the last character.
type Span struct {
	Begin Position
	End   Position
}

// IsValid returns true if both ends of the span are valid.
func (s Span) IsValid() bool {
	return s.Begin.IsValid() && s.End.IsValid()
}

// ContainsLine reports whether line falls in [Begin.Line, End.Line].
func (s Span) ContainsLine(line int) bool {
	return s.IsValid() && line >= s.Begin.Line && line <= s.End.Line
}

// IsSingleLine returns true if begin and end are on the same line.
func (s Span) IsSingleLine() bool {
	return s.Begin.Line == s.End.Line
}
