package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcedit/internal/javatest"
	"github.com/yaklabco/srcedit/pkg/locate"
)

func TestFindInlineConstruction(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "add(sayHello5, new Button"))
	require.True(t, ok)

	creation, err := locate.FindInlineConstruction(tree, stmt, "Button")
	require.NoError(t, err)
	assert.Equal(t, `new Button("Say hello6")`, tree.Text(creation))

	creation, err = locate.FindInlineConstruction(tree, stmt, "com.vaadin.flow.component.button.Button")
	require.NoError(t, err)
	assert.Equal(t, `new Button("Say hello6")`, tree.Text(creation))

	_, err = locate.FindInlineConstruction(tree, stmt, "TextField")
	require.ErrorIs(t, err, locate.ErrNoInlineTarget)
}

func TestFindInlineConstruction_Ambiguous(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, `add(new Button("One")`))
	require.True(t, ok)

	_, err := locate.FindInlineConstruction(tree, stmt, "Button")
	require.ErrorIs(t, err, locate.ErrAmbiguousTarget)

	_, err = locate.FindInlineConstruction(tree, stmt, "")
	require.ErrorIs(t, err, locate.ErrAmbiguousTarget)
}

func TestFindInlineConstruction_NotACall(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "Button sayHello4"))
	require.True(t, ok)

	_, err := locate.FindInlineConstruction(tree, stmt, "Button")
	require.ErrorIs(t, err, locate.ErrNotACall)
}

func TestJavaShapes(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	t.Run("imports", func(t *testing.T) {
		t.Parallel()

		imports := locate.Imports(tree)
		require.Len(t, imports, 5)
		assert.Equal(t, "com.vaadin.flow.component.button.Button", locate.ImportedName(tree, imports[0]))
		assert.True(t, locate.HasImport(tree, "com.vaadin.flow.component.textfield.TextField"))
		assert.False(t, locate.HasImport(tree, "com.vaadin.flow.component.checkbox.Checkbox"))
		assert.NotNil(t, locate.PackageDeclaration(tree))
	})

	t.Run("wildcard import", func(t *testing.T) {
		t.Parallel()

		wild := javatest.Parse(t, "import com.acme.ui.*;\nclass A {}\n")
		assert.True(t, locate.HasImport(wild, "com.acme.ui.Button"))
		assert.False(t, locate.HasImport(wild, "com.acme.Button"))
		assert.Nil(t, locate.PackageDeclaration(wild))
	})

	t.Run("calls", func(t *testing.T) {
		t.Parallel()

		stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "sayHello5.setText"))
		require.True(t, ok)

		call := locate.CallOf(stmt)
		require.NotNil(t, call)
		assert.Equal(t, "setText", locate.MethodName(tree, call))
		assert.Equal(t, "sayHello5", locate.ScopeName(tree, call))

		args := locate.Arguments(call)
		require.Len(t, args, 1)
		assert.True(t, locate.IsStringLiteral(args[0]))
		assert.Equal(t, "Say hello5", locate.StringValue(tree, args[0]))
	})

	t.Run("following call", func(t *testing.T) {
		t.Parallel()

		decl, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "Button sayHello5 ="))
		require.True(t, ok)

		next := locate.FollowingCall(tree, decl, "sayHello5", "setText")
		require.NotNil(t, next)
		assert.Equal(t, `sayHello5.setText("Say hello5");`, tree.Text(next))

		assert.Nil(t, locate.FollowingCall(tree, decl, "sayHello4", "setText"))
	})

	t.Run("initializer", func(t *testing.T) {
		t.Parallel()

		decl, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "Button sayHello2 ="))
		require.True(t, ok)

		init := locate.InitializerOf(decl)
		require.NotNil(t, init)
		assert.Equal(t, "Button", locate.CreationType(tree, init))
	})

	t.Run("simple names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Button", locate.SimpleName("com.vaadin.Button"))
		assert.Equal(t, "Grid", locate.SimpleName("Grid<Person>"))
		assert.Equal(t, "Button", locate.SimpleName("Button"))
	})
}

func TestClosingBrace(t *testing.T) {
	t.Parallel()

	tree := javatest.Parse(t, "class V {\n    V() { a(); }}\n")

	class, ok := locate.FindClass(tree, 2)
	require.True(t, ok)
	ctors := locate.Constructors(class)
	require.Len(t, ctors, 1)

	body := locate.ConstructorBody(ctors[0])
	brace := locate.ClosingBrace(body)
	assert.Equal(t, "}", tree.Text(brace))
	assert.Equal(t, body.End(), brace.Begin())
	assert.Equal(t, 16, brace.Begin().Column, "the constructor's brace, not the class's")
}
