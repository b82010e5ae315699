package syntax

import "slices"

// Comment node types. They attach to whatever parent surrounds them, so
// they are never treated as statements or declarations.
const (
	TypeLineComment  = "line_comment"
	TypeBlockComment = "block_comment"
)

// Node represents one named syntax node.
// Nodes form a tree owned by exactly one Tree; Parent is a back-reference
// for upward traversal. A Node never holds source text: use Tree.Text.
type Node struct {
	// Type is the grammar node type, e.g. "local_variable_declaration".
	Type string

	// Field is the field name under which the parent holds this node,
	// e.g. "name" or "arguments". Empty when the grammar names no field.
	Field string

	// Span covers the node's first through last character, inclusive.
	Span Span

	// StartByte and EndByte are the byte range [StartByte, EndByte).
	StartByte int
	EndByte   int

	// Error is true for ERROR and MISSING nodes inserted by error recovery.
	Error bool

	Parent   *Node
	Children []*Node
}

// Begin returns the position of the node's first character.
func (n *Node) Begin() Position {
	return n.Span.Begin
}

// End returns the position of the node's last character.
func (n *Node) End() Position {
	return n.Span.End
}

// IsSynthetic reports whether the node has no resolvable position.
func (n *Node) IsSynthetic() bool {
	return n == nil || !n.Span.IsValid()
}

// ContainsLine reports whether the node's line range includes line.
func (n *Node) ContainsLine(line int) bool {
	return n != nil && n.Span.ContainsLine(line)
}

// IsComment returns true for line and block comments.
func (n *Node) IsComment() bool {
	return n.Type == TypeLineComment || n.Type == TypeBlockComment
}

// Root follows parent links to the top of the tree.
func (n *Node) Root() *Node {
	root := n
	for root != nil && root.Parent != nil {
		root = root.Parent
	}
	return root
}

// ChildByField returns the first child held under the given field name.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Field == field {
			return child
		}
	}
	return nil
}

// ChildrenOfType returns the children whose type is one of types.
func (n *Node) ChildrenOfType(types ...string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if slices.Contains(types, child.Type) {
			out = append(out, child)
		}
	}
	return out
}

// FirstChildOfType returns the first child whose type is one of types.
func (n *Node) FirstChildOfType(types ...string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if slices.Contains(types, child.Type) {
			return child
		}
	}
	return nil
}

// Ancestor returns the nearest ancestor whose type is one of types.
func (n *Node) Ancestor(types ...string) *Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if slices.Contains(types, p.Type) {
			return p
		}
	}
	return nil
}

// Index returns the position of n among its parent's children, or -1.
func (n *Node) Index() int {
	if n == nil || n.Parent == nil {
		return -1
	}
	return slices.Index(n.Parent.Children, n)
}

// NextSibling returns the following child of the same parent.
func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.Parent.Children) {
		return nil
	}
	return n.Parent.Children[i+1]
}
