package component

import (
	"fmt"
	"strings"

	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/locate"
	"github.com/yaklabco/srcedit/pkg/session"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

// AddComponent returns a builder that creates a new component of typ and
// attaches it next to a reference component.
//
// createLine is where the reference component is created and attachLine
// where it is passed to an add-style call. The new component is declared
// just before the attach statement and passed to the same call, before or
// after the reference argument. With Inside and no statement on createLine,
// the line is taken to name a view class: the component is appended to its
// constructor, and a constructor is created when the class has none.
//
// The component's import is added when missing.
func AddComponent(createLine, attachLine int, where Where, typ Type, args ...string) session.BuildFunc {
	return func(tree *syntax.Tree) (edit.Batch, error) {
		if where < Before || where > Inside {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWhere, where)
		}

		b := edit.NewBuilder()
		addImport(b, tree, typ)

		name := variableName(tree, typ, args)
		decl := declaration(typ, name, args)

		create, hasCreate := locate.FindStatement(tree, createLine)
		if !hasCreate && where == Inside {
			if err := addToClass(b, tree, createLine, decl, name); err != nil {
				return nil, err
			}
			return b.Batch(), nil
		}

		attach, ok := locate.FindStatement(tree, attachLine)
		if !ok {
			return nil, fmt.Errorf("%w: no statement at attach line %d", ErrNoTarget, attachLine)
		}

		ref, err := referenceArgument(tree, createLine, create, attach)
		if err != nil {
			return nil, err
		}

		indent := tree.Lines.Indentation(attach.Begin().Line)
		b.InsertBefore(attach, decl+";\n"+indent)

		if where == Before {
			b.InsertBefore(ref, name+", ")
		} else {
			b.InsertAfter(ref, ", "+name)
		}

		return b.Batch(), nil
	}
}

// referenceArgument finds the argument of the attach call that stands for
// the reference component: the variable created on createLine, or, when the
// component is constructed inline in the attach statement itself, that
// construction.
func referenceArgument(tree *syntax.Tree, createLine int, create, attach *syntax.Node) (*syntax.Node, error) {
	call := locate.CallOf(attach)
	if call == nil {
		return nil, fmt.Errorf("%w: %w at line %d", ErrNoTarget, locate.ErrNotACall, attach.Begin().Line)
	}

	if nameNode, ok := locate.FindLocalVariableOrField(tree, createLine); ok {
		name := tree.Text(nameNode)
		for _, arg := range locate.Arguments(call) {
			if arg.Type == locate.TypeIdentifier && tree.Text(arg) == name {
				return arg, nil
			}
		}
		return nil, fmt.Errorf("%w: %s is not passed to the call at line %d", ErrNoTarget, name, attach.Begin().Line)
	}

	if create != attach {
		return nil, fmt.Errorf("%w: nothing named on line %d and it is not the attach statement", ErrNoTarget, createLine)
	}

	creation, err := locate.FindInlineConstruction(tree, attach, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTarget, err)
	}
	return creation, nil
}

// addToClass appends the component to the constructor around line, or to
// the only constructor of the class around line, or creates a constructor.
func addToClass(b *edit.Builder, tree *syntax.Tree, line int, decl, name string) error {
	if ctor, ok := locate.FindConstructor(tree, line); ok {
		appendToConstructor(b, tree, ctor, decl, name)
		return nil
	}

	class, ok := locate.FindClass(tree, line)
	if !ok {
		return fmt.Errorf("%w: no class at line %d", ErrNoTarget, line)
	}

	switch ctors := locate.Constructors(class); len(ctors) {
	case 0:
		addConstructor(b, tree, class, decl, name)
		return nil
	case 1:
		appendToConstructor(b, tree, ctors[0], decl, name)
		return nil
	default:
		return fmt.Errorf("%w: %s declares %d constructors",
			locate.ErrAmbiguousTarget, tree.Text(locate.ClassName(class)), len(ctors))
	}
}

func appendToConstructor(b *edit.Builder, tree *syntax.Tree, ctor *syntax.Node, decl, name string) {
	body := locate.ConstructorBody(ctor)
	unit := indentUnit(tree)
	closing := tree.Lines.Indentation(body.End().Line)
	inner := tree.Lines.Indentation(ctor.Begin().Line) + unit

	lines := decl + ";\n" + inner + "add(" + name + ");\n"
	brace := locate.ClosingBrace(body)

	if body.Begin().Line == body.End().Line {
		b.InsertBefore(brace, "\n"+inner+lines+closing)
		return
	}
	b.InsertBefore(brace, unit+lines+closing)
}

func addConstructor(b *edit.Builder, tree *syntax.Tree, class *syntax.Node, decl, name string) {
	className := locate.ClassName(class)
	unit := indentUnit(tree)
	outer := tree.Lines.Indentation(class.Begin().Line) + unit
	inner := outer + unit

	var ctor strings.Builder
	ctor.WriteString("\n" + outer + "public " + tree.Text(className) + "() {\n")
	ctor.WriteString(inner + decl + ";\n")
	ctor.WriteString(inner + "add(" + name + ");\n")
	ctor.WriteString(outer + "}")

	b.InsertAfterNeedle(className, "{", ctor.String())
}

// addImport imports typ unless it is already visible: imported directly or
// by wildcard, or declared in the file's own package.
func addImport(b *edit.Builder, tree *syntax.Tree, typ Type) {
	if typ.Package() == "" || typ.Package() == "java.lang" ||
		typ.Package() == packageName(tree) || locate.HasImport(tree, typ.ClassName) {
		return
	}

	stmt := "import " + typ.ClassName + ";"

	if imports := locate.Imports(tree); len(imports) > 0 {
		b.InsertAfter(imports[len(imports)-1], "\n"+stmt)
		return
	}
	if pkg := locate.PackageDeclaration(tree); pkg != nil {
		b.InsertAfter(pkg, "\n\n"+stmt)
		return
	}
	for _, n := range tree.Root.Children {
		if !n.IsComment() {
			b.InsertBefore(n, stmt+"\n\n")
			return
		}
	}
}
