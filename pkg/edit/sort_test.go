package edit_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

func pointNode(line, col int) *syntax.Node {
	pos := syntax.Position{Line: line, Column: col}
	return &syntax.Node{Type: "point", Span: syntax.Span{Begin: pos, End: pos}}
}

func TestSort_DescendingLineThenColumn(t *testing.T) {
	t.Parallel()

	batch := edit.Batch{
		{Kind: edit.InsertBefore, Anchor: pointNode(1, 5), Text: "a"},
		{Kind: edit.InsertBefore, Anchor: pointNode(3, 1), Text: "b"},
		{Kind: edit.InsertBefore, Anchor: pointNode(1, 9), Text: "c"},
		{Kind: edit.InsertBefore, Anchor: pointNode(2, 2), Text: "d"},
	}

	sorted := edit.Sort(batch)

	var got []string
	for _, e := range sorted {
		got = append(got, e.Text)
	}
	if want := []string{"b", "d", "c", "a"}; !slices.Equal(got, want) {
		t.Errorf("Sort() order = %v, want %v", got, want)
	}

	if batch[0].Text != "a" {
		t.Error("Sort() must not reorder its input")
	}
}

// TestSort_SequentialMatchesPristineOffsets checks that applying a sorted
// batch on one mutating buffer gives the same text as resolving every edit
// once against the pristine text and splicing from the back.
func TestSort_SequentialMatchesPristineOffsets(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("abcdefghij\n", 6)
	rng := rand.New(rand.NewPCG(7, 11))

	for round := range 20 {
		var batch edit.Batch
		seen := map[syntax.Position]bool{}
		for len(batch) < 8 {
			line, col := rng.IntN(6)+1, rng.IntN(11)+1
			pos := syntax.Position{Line: line, Column: col}
			if seen[pos] {
				continue
			}
			seen[pos] = true
			batch = append(batch, edit.Edit{
				Kind:   edit.InsertBefore,
				Anchor: pointNode(line, col),
				Text:   fmt.Sprintf("<%d>", len(batch)),
			})
		}
		rng.Shuffle(len(batch), func(i, j int) { batch[i], batch[j] = batch[j], batch[i] })

		got, _, err := edit.ApplyAll(batch, text)
		if err != nil {
			t.Fatalf("round %d: ApplyAll() error = %v", round, err)
		}

		if want := pristineSplice(t, text, batch); got != want {
			t.Fatalf("round %d: sequential result\n%s\ndiffers from pristine splice\n%s", round, got, want)
		}

		sorted := edit.Sort(batch)
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].Anchor.Begin().Compare(sorted[i].Anchor.Begin()) < 0 {
				t.Fatalf("round %d: positions increase at index %d", round, i)
			}
		}
	}
}

func pristineSplice(t *testing.T, text string, batch edit.Batch) string {
	t.Helper()

	type splice struct {
		offset int
		text   string
	}
	splices := make([]splice, 0, len(batch))
	for _, e := range batch {
		offset, err := edit.Resolve(text, e.Anchor.Begin())
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		splices = append(splices, splice{offset: offset, text: e.Text})
	}
	slices.SortFunc(splices, func(a, b splice) int { return a.offset - b.offset })

	var out strings.Builder
	cursor := 0
	for _, s := range splices {
		out.WriteString(text[cursor:s.offset])
		out.WriteString(s.text)
		cursor = s.offset
	}
	out.WriteString(text[cursor:])
	return out.String()
}

func TestTies(t *testing.T) {
	t.Parallel()

	batch := edit.Sort(edit.Batch{
		{Kind: edit.InsertBefore, Anchor: pointNode(4, 2), Text: "a"},
		{Kind: edit.InsertAfter, Anchor: pointNode(4, 2), Text: "b"},
		{Kind: edit.InsertBefore, Anchor: pointNode(1, 1), Text: "c"},
	})

	ties := edit.Ties(batch)
	if len(ties) != 1 {
		t.Fatalf("Ties() = %d groups, want 1", len(ties))
	}
	if ties[0].Position != (syntax.Position{Line: 4, Column: 2}) {
		t.Errorf("tie position = %s, want 4:2", ties[0].Position)
	}
	if len(ties[0].Edits) != 2 || ties[0].Edits[0].Text != "a" {
		t.Errorf("tie edits = %v, want stable [a b]", ties[0].Edits)
	}

	if got := edit.Ties(edit.Sort(edit.Batch{batch[2]})); got != nil {
		t.Errorf("Ties() on distinct anchors = %v, want nil", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	const text = "int x = 1;\n"
	owned := nodeOf(t, text, "x", 0)
	tree := treeOf(text, owned)

	if err := edit.Validate(edit.Batch{{Kind: edit.Replace, Anchor: owned, Text: "y"}}, tree); err != nil {
		t.Errorf("Validate() on owned anchor error = %v", err)
	}

	foreign := nodeOf(t, text, "1", 0)
	treeOf(text, foreign)

	tests := []struct {
		name    string
		edit    edit.Edit
		wantErr error
	}{
		{"foreign anchor", edit.Edit{Kind: edit.Replace, Anchor: foreign}, edit.ErrForeignAnchor},
		{"detached anchor", edit.Edit{Kind: edit.Replace, Anchor: pointNode(1, 1)}, edit.ErrForeignAnchor},
		{"synthetic anchor", edit.Edit{Kind: edit.Replace, Anchor: &syntax.Node{}}, edit.ErrUnresolvableAnchor},
		{"unknown kind", edit.Edit{Anchor: owned}, edit.ErrUnknownKind},
	}

	for _, tt := range tests {
		err := edit.Validate(edit.Batch{tt.edit}, tree)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Validate() error = %v, want %v", tt.name, err, tt.wantErr)
		}
		if !edit.IsPrecondition(err) {
			t.Errorf("%s: error should be a precondition violation", tt.name)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := edit.InsertAtBlockEnd.String(); got != "insert-at-block-end" {
		t.Errorf("String() = %q", got)
	}
	if got := edit.Kind(0).String(); got != "kind(0)" {
		t.Errorf("String() = %q", got)
	}
}
