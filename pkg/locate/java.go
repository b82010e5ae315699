package locate

import (
	"strconv"
	"strings"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// CallOf returns the method invocation an expression statement consists
// of, or nil.
func CallOf(stmt *syntax.Node) *syntax.Node {
	if stmt == nil || stmt.Type != TypeExpressionStatement || len(stmt.Children) == 0 {
		return nil
	}
	if expr := stmt.Children[0]; expr.Type == TypeMethodInvocation {
		return expr
	}
	return nil
}

// Arguments returns the argument expressions of a call or object creation.
func Arguments(call *syntax.Node) []*syntax.Node {
	list := call.ChildByField("arguments")
	if list == nil {
		return nil
	}
	args := make([]*syntax.Node, 0, len(list.Children))
	for _, arg := range list.Children {
		if !arg.IsComment() {
			args = append(args, arg)
		}
	}
	return args
}

// MethodName returns the invoked method's name.
func MethodName(tree *syntax.Tree, call *syntax.Node) string {
	return tree.Text(call.ChildByField("name"))
}

// ScopeName returns the receiver of a call when it is a plain identifier,
// e.g. "button" in button.setText("x").
func ScopeName(tree *syntax.Tree, call *syntax.Node) string {
	object := call.ChildByField("object")
	if object == nil || object.Type != TypeIdentifier {
		return ""
	}
	return tree.Text(object)
}

// CreationType returns the simple type name constructed by an object
// creation expression, e.g. "Button" for new com.acme.Button<T>("x").
func CreationType(tree *syntax.Tree, creation *syntax.Node) string {
	if creation == nil || creation.Type != TypeObjectCreation {
		return ""
	}
	return SimpleName(tree.Text(creation.ChildByField("type")))
}

// SimpleName strips package qualifiers and type arguments from a type name.
func SimpleName(typeName string) string {
	if i := strings.IndexByte(typeName, '<'); i >= 0 {
		typeName = typeName[:i]
	}
	typeName = strings.TrimSpace(typeName)
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}
	return typeName
}

// IsStringLiteral reports whether n is a string literal.
func IsStringLiteral(n *syntax.Node) bool {
	return n != nil && n.Type == TypeStringLiteral
}

// StringValue returns the unquoted value of a string literal.
func StringValue(tree *syntax.Tree, literal *syntax.Node) string {
	raw := tree.Text(literal)
	if value, err := strconv.Unquote(raw); err == nil {
		return value
	}
	return strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
}

// Imports returns the import declarations of a compilation unit.
func Imports(tree *syntax.Tree) []*syntax.Node {
	return tree.Root.ChildrenOfType(TypeImportDeclaration)
}

// ImportedName returns the imported name, e.g. "java.util.List" or
// "java.util.*" for a wildcard import.
func ImportedName(tree *syntax.Tree, decl *syntax.Node) string {
	text := tree.Text(decl)
	text = strings.TrimPrefix(text, "import")
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "static ")
	return strings.Join(strings.Fields(text), "")
}

// HasImport reports whether className is imported, directly or through a
// wildcard import of its package.
func HasImport(tree *syntax.Tree, className string) bool {
	pkg := ""
	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		pkg = className[:i]
	}
	for _, decl := range Imports(tree) {
		name := ImportedName(tree, decl)
		if name == className || (pkg != "" && name == pkg+".*") {
			return true
		}
	}
	return false
}

// PackageDeclaration returns the package declaration, or nil.
func PackageDeclaration(tree *syntax.Tree) *syntax.Node {
	return tree.Root.FirstChildOfType(TypePackageDeclaration)
}

// ClassBody returns the body of a type declaration.
func ClassBody(class *syntax.Node) *syntax.Node {
	return class.ChildByField("body")
}

// ClassName returns the identifier naming a type declaration.
func ClassName(class *syntax.Node) *syntax.Node {
	return class.ChildByField("name")
}

// Constructors returns the constructors declared directly in a class.
func Constructors(class *syntax.Node) []*syntax.Node {
	return ClassBody(class).ChildrenOfType(TypeConstructorDecl)
}

// ConstructorBody returns the body of a constructor declaration.
func ConstructorBody(ctor *syntax.Node) *syntax.Node {
	return ctor.ChildByField("body")
}

// ClosingBrace returns a node covering only the last character of block,
// its closing "}". The node is not linked into the tree.
func ClosingBrace(block *syntax.Node) *syntax.Node {
	end := block.End()
	return &syntax.Node{
		Type:      "}",
		Span:      syntax.Span{Begin: end, End: end},
		StartByte: block.EndByte - 1,
		EndByte:   block.EndByte,
		Parent:    block,
	}
}

// Identifiers returns the text of every identifier in the tree.
func Identifiers(tree *syntax.Tree) map[string]bool {
	names := make(map[string]bool)
	for _, n := range syntax.FindByType(tree.Root, TypeIdentifier) {
		names[tree.Text(n)] = true
	}
	return names
}

// FollowingCall finds a statement after stmt in the same statement list
// that invokes method on the identifier variable, e.g. button.setText(...).
func FollowingCall(tree *syntax.Tree, stmt *syntax.Node, variable, method string) *syntax.Node {
	for next := stmt.NextSibling(); next != nil; next = next.NextSibling() {
		call := CallOf(next)
		if call == nil {
			continue
		}
		if ScopeName(tree, call) == variable && MethodName(tree, call) == method {
			return next
		}
	}
	return nil
}
