package syntax

// Tree is the immutable parse result of one source text.
// It owns all of its nodes and is used purely as a query index over the
// original text: edits never mutate it.
type Tree struct {
	// Root is the top-level node (a "program" for Java sources).
	Root *Node

	// Source is the exact text the tree was parsed from.
	Source string

	// Lines indexes Source by line.
	Lines LineIndex

	// HasErrors is set when the parser had to recover from syntax errors.
	HasErrors bool
}

// NewTree assembles a tree over source, fixing up parent links below root.
func NewTree(source string, root *Node) *Tree {
	tree := &Tree{
		Root:   root,
		Source: source,
		Lines:  BuildLines(source),
	}
	linkParents(root)
	return tree
}

func linkParents(n *Node) {
	if n == nil {
		return
	}
	for _, child := range n.Children {
		child.Parent = n
		linkParents(child)
	}
}

// Text returns the source text covered by node.
// Returns "" for nodes that do not belong to this tree.
func (t *Tree) Text(n *Node) string {
	if !t.Owns(n) || n.StartByte < 0 || n.EndByte > len(t.Source) || n.StartByte > n.EndByte {
		return ""
	}
	return t.Source[n.StartByte:n.EndByte]
}

// Owns reports whether n is a node of this tree.
func (t *Tree) Owns(n *Node) bool {
	return t != nil && n != nil && t.Root != nil && n.Root() == t.Root
}

// NodeAt returns the deepest node whose span contains pos, or nil.
func (t *Tree) NodeAt(pos Position) *Node {
	if t == nil || t.Root == nil {
		return nil
	}
	var found *Node
	for n := t.Root; n != nil; {
		if !spanContains(n.Span, pos) {
			break
		}
		found = n
		var next *Node
		for _, child := range n.Children {
			if spanContains(child.Span, pos) {
				next = child
				break
			}
		}
		n = next
	}
	return found
}

func spanContains(s Span, pos Position) bool {
	return s.IsValid() && s.Begin.Compare(pos) <= 0 && pos.Compare(s.End) <= 0
}
