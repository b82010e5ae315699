package locate

import (
	"errors"
	"fmt"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// ErrOverlappingSiblings is returned when two sibling nodes share characters.
var ErrOverlappingSiblings = errors.New("sibling nodes overlap")

// CheckDisjointSiblings verifies that the children of every node occupy
// disjoint, increasing character ranges. Siblings may share a line; the
// locator then takes the first of them.
func CheckDisjointSiblings(tree *syntax.Tree) error {
	if tree == nil {
		return nil
	}
	return syntax.Walk(tree.Root, func(n *syntax.Node) error {
		for i := 1; i < len(n.Children); i++ {
			prev, next := n.Children[i-1], n.Children[i]
			if prev.IsSynthetic() || next.IsSynthetic() {
				continue
			}
			if prev.End().Compare(next.Begin()) >= 0 {
				return fmt.Errorf("%w: %s %s-%s and %s %s-%s", ErrOverlappingSiblings,
					prev.Type, prev.Begin(), prev.End(),
					next.Type, next.Begin(), next.End())
			}
		}
		return nil
	})
}
