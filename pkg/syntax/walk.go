package syntax

import "errors"

// SkipChildren may be returned from a WalkFunc to leave the current node's
// subtree unvisited. Walk itself never returns it.
var SkipChildren = errors.New("skip children") //nolint:revive,staticcheck // Named like fs.SkipDir.

// errStop ends a walk early from inside this package.
var errStop = errors.New("stop walk")

// WalkFunc is called once per node in pre-order.
type WalkFunc func(n *Node) error

// Walk visits root and its descendants in source order, parents first.
// A non-nil error other than SkipChildren stops the walk and is returned.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}

	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch err := fn(n); {
		case errors.Is(err, SkipChildren):
			continue
		case err != nil:
			return err
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

// FindFirst returns the first node in pre-order satisfying match, or nil.
func FindFirst(root *Node, match func(n *Node) bool) *Node {
	var found *Node
	_ = Walk(root, func(n *Node) error {
		if match(n) {
			found = n
			return errStop
		}
		return nil
	})
	return found
}

// FindByType returns every node of the given grammar type, in pre-order.
func FindByType(root *Node, typ string) []*Node {
	var out []*Node
	_ = Walk(root, func(n *Node) error {
		if n.Type == typ {
			out = append(out, n)
		}
		return nil
	})
	return out
}
