package component

import (
	"fmt"

	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/locate"
	"github.com/yaklabco/srcedit/pkg/session"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

// SetAttribute returns a builder that sets an attribute of the component
// created on createLine by calling method with value.
//
// When method is the type's constructor property and the construction has a
// single string argument, that argument is replaced. Otherwise a later
// variable.method(...) call in the same block is replaced, or a new call is
// inserted on the line after the creation statement.
func SetAttribute(createLine int, typ Type, method, value string) session.BuildFunc {
	return func(tree *syntax.Tree) (edit.Batch, error) {
		if method == "" {
			return nil, fmt.Errorf("%w: empty method name", ErrUnsupported)
		}

		stmt, ok := locate.FindStatement(tree, createLine)
		if !ok {
			return nil, fmt.Errorf("%w: no statement at line %d", ErrNoTarget, createLine)
		}

		b := edit.NewBuilder()

		nameNode, named := locate.FindLocalVariableOrField(tree, createLine)
		if !named {
			creation, err := locate.FindInlineConstruction(tree, stmt, typ.ClassName)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNoTarget, err)
			}
			if !replaceConstructorArgument(b, tree, creation, typ, method, value) {
				return nil, fmt.Errorf("%w: %s on an inline new %s(...) at line %d",
					ErrUnsupported, method, typ.SimpleName(), createLine)
			}
			return b.Batch(), nil
		}

		if init := locate.InitializerOf(stmt); init != nil && init.Type == locate.TypeObjectCreation {
			if replaceConstructorArgument(b, tree, init, typ, method, value) {
				return b.Batch(), nil
			}
		}

		variable := tree.Text(nameNode)
		call := variable + "." + method + "(" + javaString(value) + ");"

		if existing := locate.FollowingCall(tree, stmt, variable, method); existing != nil {
			b.Replace(existing, call)
			return b.Batch(), nil
		}

		indent := tree.Lines.Indentation(stmt.Begin().Line)
		b.InsertLineAfter(stmt, indent+call+"\n")
		return b.Batch(), nil
	}
}

// replaceConstructorArgument swaps the single string argument of creation
// for value when method is what that argument sets.
func replaceConstructorArgument(b *edit.Builder, tree *syntax.Tree, creation *syntax.Node, typ Type, method, value string) bool {
	if typ.Property == "" || method != typ.Property {
		return false
	}
	if locate.CreationType(tree, creation) != typ.SimpleName() {
		return false
	}

	args := locate.Arguments(creation)
	if len(args) != 1 || !locate.IsStringLiteral(args[0]) {
		return false
	}

	b.Replace(args[0], javaString(value))
	return true
}
