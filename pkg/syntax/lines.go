package syntax

import (
	"sort"
	"unicode/utf8"
)

// LineInfo describes the byte layout of one line.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index of the line terminator (\n or \r\n),
	// or the end of content for the last line.
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// LineIndex maps between byte offsets and 1-based line/column positions.
type LineIndex struct {
	content string
	lines   []LineInfo
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content string) LineIndex {
	idx := LineIndex{content: content}

	lineStart := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		newlineStart := i
		if i > 0 && content[i-1] == '\r' {
			newlineStart = i - 1
		}
		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    i + 1,
		})
		lineStart = i + 1
	}

	// Last line, which may be empty after a trailing newline.
	idx.lines = append(idx.lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return idx
}

// LineCount returns the number of lines in the content.
func (idx LineIndex) LineCount() int {
	return len(idx.lines)
}

// Line returns the layout of a 1-based line.
func (idx LineIndex) Line(line int) (LineInfo, bool) {
	if line < 1 || line > len(idx.lines) {
		return LineInfo{}, false
	}
	return idx.lines[line-1], true
}

// LineAt converts a byte offset to a 1-based line and rune column.
// Returns the zero Position if the offset is out of range.
func (idx LineIndex) LineAt(offset int) Position {
	if offset < 0 || offset > len(idx.content) || len(idx.lines) == 0 {
		return Position{}
	}

	lineIdx := sort.Search(len(idx.lines), func(i int) bool {
		return idx.lines[i].EndOffset > offset
	})
	if lineIdx >= len(idx.lines) {
		lineIdx = len(idx.lines) - 1
	}

	info := idx.lines[lineIdx]
	if offset < info.StartOffset {
		return Position{}
	}

	col := utf8.RuneCountInString(idx.content[info.StartOffset:offset]) + 1
	return Position{Line: lineIdx + 1, Column: col}
}

// LineContent returns the content of a 1-based line, excluding the terminator.
func (idx LineIndex) LineContent(line int) string {
	info, ok := idx.Line(line)
	if !ok {
		return ""
	}
	return idx.content[info.StartOffset:info.NewlineStart]
}

// Indentation returns the leading spaces and tabs of a 1-based line.
func (idx LineIndex) Indentation(line int) string {
	content := idx.LineContent(line)
	for i := 0; i < len(content); i++ {
		if content[i] != ' ' && content[i] != '\t' {
			return content[:i]
		}
	}
	return content
}
