package edit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines surround each change in a hunk.
const contextLines = 3

// Diff is a line-level unified diff of one file.
type Diff struct {
	Path      string
	Hunks     []DiffHunk
	Additions int
	Deletions int
}

// DiffHunk is one "@@" section. Starts are 1-based line numbers.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is a single line of a hunk, without its marker or newline.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind says which side(s) of the diff a line belongs to.
type DiffLineKind int

// Line kinds, in marker order " ", "+", "-".
const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// Marker is the unified diff prefix for the kind.
func (k DiffLineKind) Marker() byte {
	switch k {
	case DiffLineAdd:
		return '+'
	case DiffLineRemove:
		return '-'
	default:
		return ' '
	}
}

// span reports how many original and modified lines the kind consumes.
func (k DiffLineKind) span() (int, int) {
	switch k {
	case DiffLineAdd:
		return 0, 1
	case DiffLineRemove:
		return 1, 0
	default:
		return 1, 1
	}
}

// GenerateDiff compares two versions of a file line by line.
// It returns nil when they are identical.
func GenerateDiff(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	hunks := buildHunks(lineOps(original, modified))
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, line := range h.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			case DiffLineContext:
			}
		}
	}
	return d
}

// HasChanges is false for a nil or empty diff.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func (d *Diff) displayPath() string {
	return strings.TrimPrefix(d.Path, "/")
}

// GitHeader returns the "diff --git" line for the file.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	p := d.displayPath()
	return "diff --git a/" + p + " b/" + p
}

// String renders the file headers and hunks in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var b strings.Builder
	p := d.displayPath()
	b.WriteString("--- a/" + p + "\n+++ b/" + p + "\n")
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, line := range h.Lines {
			b.WriteByte(line.Kind.Marker())
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FullString is String preceded by the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// lineOps diffs the two texts in line mode: diffmatchpatch encodes each
// distinct line as one rune, so every rune of the result is one line.
func lineOps(original, modified string) []DiffLine {
	before, after := splitLines(original), splitLines(modified)

	dmp := diffmatchpatch.New()
	a, b, _ := dmp.DiffLinesToRunes(original, modified)

	ops := make([]DiffLine, 0, max(len(before), len(after)))
	var i, j int
	for _, chunk := range dmp.DiffMainRunes(a, b, false) {
		for range utf8.RuneCountInString(chunk.Text) {
			switch chunk.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, DiffLine{DiffLineContext, lineAt(before, i)})
				i++
				j++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, DiffLine{DiffLineRemove, lineAt(before, i)})
				i++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, DiffLine{DiffLineAdd, lineAt(after, j)})
				j++
			}
		}
	}
	return ops
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// splitLines drops the empty element a trailing newline would produce.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// window is a half-open range of ops that becomes one hunk.
type window struct{ lo, hi int }

// hunkWindows pads each run of changes with context and joins runs whose
// padded ranges touch.
func hunkWindows(ops []DiffLine) []window {
	var out []window
	for i := 0; i < len(ops); i++ {
		if ops[i].Kind == DiffLineContext {
			continue
		}
		end := i
		for end < len(ops) && ops[end].Kind != DiffLineContext {
			end++
		}

		w := window{lo: max(i-contextLines, 0), hi: min(end+contextLines, len(ops))}
		if n := len(out); n > 0 && w.lo <= out[n-1].hi {
			out[n-1].hi = w.hi
		} else {
			out = append(out, w)
		}
		i = end
	}
	return out
}

func buildHunks(ops []DiffLine) []DiffHunk {
	var hunks []DiffHunk
	origLine, modLine, at := 1, 1, 0

	for _, w := range hunkWindows(ops) {
		for ; at < w.lo; at++ {
			o, m := ops[at].Kind.span()
			origLine += o
			modLine += m
		}

		h := DiffHunk{OriginalStart: origLine, ModifiedStart: modLine, Lines: ops[w.lo:w.hi:w.hi]}
		for ; at < w.hi; at++ {
			o, m := ops[at].Kind.span()
			h.OriginalCount += o
			h.ModifiedCount += m
			origLine += o
			modLine += m
		}
		hunks = append(hunks, h)
	}
	return hunks
}
