package edit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Resolve converts a 1-based line/column position into a byte offset in text.
//
// It counts line-1 newlines from the start of text, then steps over column-1
// characters. The column may address the line terminator itself (one past
// the last character), which is where InsertAfter lands for a node ending a
// line. Every call scans from the start of text: offsets are never cached,
// because the text changes between calls in an apply pass.
func Resolve(text string, pos syntax.Position) (int, error) {
	if !pos.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrPositionOutOfRange, pos)
	}

	offset := 0
	for line := 1; line < pos.Line; line++ {
		idx := strings.IndexByte(text[offset:], '\n')
		if idx < 0 {
			return 0, fmt.Errorf("%w: line %d of %d", ErrPositionOutOfRange, pos.Line, line)
		}
		offset += idx + 1
	}

	for col := 1; col < pos.Column; col++ {
		if offset >= len(text) || text[offset] == '\n' {
			return 0, fmt.Errorf("%w: column %d on line %d", ErrPositionOutOfRange, pos.Column, pos.Line)
		}
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}

	return offset, nil
}
