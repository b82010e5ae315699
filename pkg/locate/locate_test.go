package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcedit/internal/javatest"
	"github.com/yaklabco/srcedit/pkg/locate"
)

func TestFindStatement(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"assignment", `name = new TextField`, `name = new TextField("Your name");`},
		{"declaration", `Button sayHello2 =`, `Button sayHello2 = new Button("Say hello2");`},
		{"call", `add(name, sayHello`, `add(name, sayHello, sayHello2, sayHello3, sayHello4);`},
		{"inside lambda resolves to outer statement", `Notification.show`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, tt.fragment))
			require.True(t, ok)
			if tt.want != "" {
				assert.Equal(t, tt.want, tree.Text(stmt))
			} else {
				assert.Contains(t, tree.Text(stmt), "sayHello.addClickListener")
			}
			assert.True(t, locate.IsStatement(stmt))
		})
	}
}

func TestFindStatement_Absent(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	for _, fragment := range []string{
		"package com.example.demo",
		"import com.vaadin.flow.router.Route",
		"private TextField name",
		"public DemoFile() {",
	} {
		_, ok := locate.FindStatement(tree, javatest.LineOf(t, src, fragment))
		assert.False(t, ok, "no statement expected on %q", fragment)
	}

	_, ok := locate.FindStatement(tree, tree.Lines.LineCount()+10)
	assert.False(t, ok)
}

func TestFindClassAndConstructor(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)
	body := javatest.LineOf(t, src, "setMargin(true)")

	class, ok := locate.FindClass(tree, body)
	require.True(t, ok)
	assert.Equal(t, "DemoFile", tree.Text(locate.ClassName(class)))

	ctor, ok := locate.FindConstructor(tree, body)
	require.True(t, ok)
	assert.True(t, locate.IsConstructor(ctor))
	assert.Equal(t, ctor, locate.Constructors(class)[0])

	_, ok = locate.FindConstructor(tree, javatest.LineOf(t, src, "private Button sayHello"))
	assert.False(t, ok)

	_, ok = locate.FindClass(tree, javatest.LineOf(t, src, "import com.vaadin"))
	assert.False(t, ok)
}

func TestFindLocalVariableOrField(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	tests := []struct {
		fragment string
		want     string
		found    bool
	}{
		{`name = new TextField`, "name", true},
		{`sayHello = new Button("Say hello1")`, "sayHello", true},
		{`Button sayHello3;`, "sayHello3", true},
		{`sayHello3 = new Button`, "sayHello3", true},
		{`Button sayHello4 = new Button()`, "sayHello4", true},
		{`sayHello5.setText`, "", false},
		{`add(sayHello5, new Button`, "", false},
	}

	for _, tt := range tests {
		name, ok := locate.FindLocalVariableOrField(tree, javatest.LineOf(t, src, tt.fragment))
		assert.Equal(t, tt.found, ok, tt.fragment)
		if tt.found {
			assert.Equal(t, tt.want, tree.Text(name), tt.fragment)
		}
	}
}

// Every line strictly inside a statement resolves to that statement, and
// lines outside every top-level declaration resolve to nothing.
func TestFindEnclosing_ContainmentLaw(t *testing.T) {
	t.Parallel()

	src := javatest.DemoFile
	tree := javatest.Parse(t, src)

	stmt, ok := locate.FindStatement(tree, javatest.LineOf(t, src, "sayHello.addClickListener"))
	require.True(t, ok)
	require.Greater(t, stmt.End().Line, stmt.Begin().Line)

	for line := stmt.Begin().Line; line <= stmt.End().Line; line++ {
		got, ok := locate.FindStatement(tree, line)
		require.True(t, ok, "line %d", line)
		assert.Same(t, stmt, got, "line %d", line)
	}

	class, ok := locate.FindClass(tree, stmt.Begin().Line)
	require.True(t, ok)
	for line := 1; line <= tree.Lines.LineCount(); line++ {
		if class.ContainsLine(line) {
			continue
		}
		for _, kind := range []locate.Kind{
			locate.Statement,
			locate.ClassDeclaration,
			locate.ConstructorDeclaration,
			locate.LocalVariableOrFieldName,
		} {
			_, ok := locate.FindEnclosing(tree, line, kind)
			assert.False(t, ok, "line %d kind %s", line, kind)
		}
	}
}

func TestCheckDisjointSiblings(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		javatest.DemoFile,
		javatest.EmptyView,
		javatest.EmptyViewWithConstructor,
	} {
		require.NoError(t, locate.CheckDisjointSiblings(javatest.Parse(t, src)))
	}
}
