// Package locate finds the syntax nodes that edits are anchored to.
//
// Lookups are by source line. Descent is a first-match containment search:
// at each level the first child whose line range contains the line is
// entered, and the walk stops at the first node of the requested kind.
package locate

import (
	"fmt"
	"slices"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Kind is the category of node a lookup stops at.
type Kind int

const (
	// Statement is a statement directly inside a block or constructor body.
	Statement Kind = iota + 1

	// ClassDeclaration is a class, record, enum or interface declaration.
	ClassDeclaration

	// ConstructorDeclaration is a constructor declaration.
	ConstructorDeclaration

	// LocalVariableOrFieldName is the identifier a statement declares or
	// assigns: the first declarator of a local variable declaration, or the
	// plain name on the left of an assignment.
	LocalVariableOrFieldName
)

func (k Kind) String() string {
	switch k {
	case Statement:
		return "statement"
	case ClassDeclaration:
		return "class declaration"
	case ConstructorDeclaration:
		return "constructor declaration"
	case LocalVariableOrFieldName:
		return "local variable or field name"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Grammar node types the locator understands.
const (
	TypeBlock                = "block"
	TypeConstructorBody      = "constructor_body"
	TypeSwitchGroup          = "switch_block_statement_group"
	TypeClassDeclaration     = "class_declaration"
	TypeRecordDeclaration    = "record_declaration"
	TypeEnumDeclaration      = "enum_declaration"
	TypeInterfaceDeclaration = "interface_declaration"
	TypeConstructorDecl      = "constructor_declaration"
	TypeLocalVariableDecl    = "local_variable_declaration"
	TypeVariableDeclarator   = "variable_declarator"
	TypeExpressionStatement  = "expression_statement"
	TypeAssignment           = "assignment_expression"
	TypeIdentifier           = "identifier"
	TypeMethodInvocation     = "method_invocation"
	TypeObjectCreation       = "object_creation_expression"
	TypeStringLiteral        = "string_literal"
	TypeImportDeclaration    = "import_declaration"
	TypePackageDeclaration   = "package_declaration"
)

var statementParents = []string{TypeBlock, TypeConstructorBody, TypeSwitchGroup}

var classTypes = []string{
	TypeClassDeclaration,
	TypeRecordDeclaration,
	TypeEnumDeclaration,
	TypeInterfaceDeclaration,
}

// IsStatement reports whether n sits directly in a statement list.
func IsStatement(n *syntax.Node) bool {
	return n != nil && n.Parent != nil && !n.IsComment() &&
		slices.Contains(statementParents, n.Parent.Type)
}

// IsClass reports whether n is a type declaration with a body.
func IsClass(n *syntax.Node) bool {
	return n != nil && slices.Contains(classTypes, n.Type)
}

// IsConstructor reports whether n is a constructor declaration.
func IsConstructor(n *syntax.Node) bool {
	return n != nil && n.Type == TypeConstructorDecl
}

// FindEnclosing returns the node of the requested kind that encloses line.
// The second result is false when no node of that kind contains the line,
// or, for LocalVariableOrFieldName, when the statement on that line neither
// declares nor assigns a plain name. Callers then treat the target as an
// inline expression, see FindInlineConstruction.
func FindEnclosing(tree *syntax.Tree, line int, kind Kind) (*syntax.Node, bool) {
	switch kind {
	case Statement:
		return descend(tree, line, IsStatement)
	case ClassDeclaration:
		return descend(tree, line, IsClass)
	case ConstructorDeclaration:
		return descend(tree, line, IsConstructor)
	case LocalVariableOrFieldName:
		stmt, ok := descend(tree, line, IsStatement)
		if !ok {
			return nil, false
		}
		name := DeclaredName(stmt)
		return name, name != nil
	default:
		return nil, false
	}
}

// FindStatement returns the statement enclosing line.
func FindStatement(tree *syntax.Tree, line int) (*syntax.Node, bool) {
	return FindEnclosing(tree, line, Statement)
}

// FindClass returns the outermost type declaration enclosing line.
func FindClass(tree *syntax.Tree, line int) (*syntax.Node, bool) {
	return FindEnclosing(tree, line, ClassDeclaration)
}

// FindConstructor returns the constructor declaration enclosing line.
func FindConstructor(tree *syntax.Tree, line int) (*syntax.Node, bool) {
	return FindEnclosing(tree, line, ConstructorDeclaration)
}

// FindLocalVariableOrField returns the name declared or assigned on line.
func FindLocalVariableOrField(tree *syntax.Tree, line int) (*syntax.Node, bool) {
	return FindEnclosing(tree, line, LocalVariableOrFieldName)
}

func descend(tree *syntax.Tree, line int, match func(*syntax.Node) bool) (*syntax.Node, bool) {
	if tree == nil || tree.Root == nil {
		return nil, false
	}

	for n := firstContaining(tree.Root, line); n != nil; n = firstContaining(n, line) {
		if match(n) {
			return n, true
		}
	}
	return nil, false
}

func firstContaining(n *syntax.Node, line int) *syntax.Node {
	for _, child := range n.Children {
		if child.ContainsLine(line) {
			return child
		}
	}
	return nil
}

// DeclaredName returns the identifier a statement declares or assigns, or
// nil when the statement has neither shape.
func DeclaredName(stmt *syntax.Node) *syntax.Node {
	if stmt == nil {
		return nil
	}

	switch stmt.Type {
	case TypeLocalVariableDecl:
		declarator := stmt.FirstChildOfType(TypeVariableDeclarator)
		return declarator.ChildByField("name")

	case TypeExpressionStatement:
		if len(stmt.Children) == 0 {
			return nil
		}
		expr := stmt.Children[0]
		if expr.Type != TypeAssignment {
			return nil
		}
		left := expr.ChildByField("left")
		if left == nil || left.Type != TypeIdentifier {
			return nil
		}
		return left
	}

	return nil
}

// InitializerOf returns the expression a statement stores into its
// declared or assigned name.
func InitializerOf(stmt *syntax.Node) *syntax.Node {
	if stmt == nil {
		return nil
	}

	switch stmt.Type {
	case TypeLocalVariableDecl:
		return stmt.FirstChildOfType(TypeVariableDeclarator).ChildByField("value")
	case TypeExpressionStatement:
		if len(stmt.Children) > 0 && stmt.Children[0].Type == TypeAssignment {
			return stmt.Children[0].ChildByField("right")
		}
	}
	return nil
}
