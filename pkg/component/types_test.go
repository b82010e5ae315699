package component_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/config"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := component.NewRegistry(config.ComponentConfig{
		Name:     "Checkbox",
		Class:    "com.vaadin.flow.component.checkbox.Checkbox",
		Property: "setLabel",
	})
	require.NoError(t, err)

	for _, name := range []string{"button", "BUTTON", "Button"} {
		typ, err := r.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, component.Button, typ)
	}

	typ, err := r.Lookup("textfield")
	require.NoError(t, err)
	assert.Equal(t, "TextField", typ.SimpleName())
	assert.Equal(t, "com.vaadin.flow.component.textfield", typ.Package())

	typ, err = r.Lookup("checkbox")
	require.NoError(t, err)
	assert.Equal(t, "setLabel", typ.Property)

	_, err = r.Lookup("grid")
	assert.ErrorIs(t, err, component.ErrUnknownType)

	names := make([]string, 0)
	for _, typ := range r.Types() {
		names = append(names, typ.Name)
	}
	assert.Equal(t, []string{"Checkbox", "button", "textfield"}, names)
}

func TestNewRegistry_Invalid(t *testing.T) {
	t.Parallel()

	_, err := component.NewRegistry(config.ComponentConfig{Name: "x"})
	assert.ErrorIs(t, err, component.ErrInvalidType)

	_, err = component.NewRegistry(config.ComponentConfig{Name: "x", Class: "a b;"})
	assert.ErrorIs(t, err, component.ErrInvalidType)
}

func TestParseWhere(t *testing.T) {
	t.Parallel()

	for _, w := range []component.Where{component.Before, component.After, component.Inside} {
		got, err := component.ParseWhere(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	got, err := component.ParseWhere(" AFTER ")
	require.NoError(t, err)
	assert.Equal(t, component.After, got)

	_, err = component.ParseWhere("around")
	assert.ErrorIs(t, err, component.ErrInvalidWhere)
	assert.Equal(t, "where(7)", component.Where(7).String())
}

func TestSourceFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mainFile := filepath.Join(root, "src", "main", "java", "com", "example", "MainView.java")
	testFile := filepath.Join(root, "src", "test", "java", "com", "example", "TestView.java")
	for _, p := range []string{mainFile, testFile} {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("class X {}\n"), 0o644))
	}

	got, err := component.SourceFile(root, "com.example.MainView")
	require.NoError(t, err)
	assert.Equal(t, mainFile, got)

	got, err = component.SourceFile(root, "com.example.TestView")
	require.NoError(t, err)
	assert.Equal(t, testFile, got)

	got, err = component.SourceFile(root, "com.example.MainView$Inner")
	require.NoError(t, err)
	assert.Equal(t, mainFile, got)

	_, err = component.SourceFile(root, "com.example.Missing")
	assert.ErrorIs(t, err, component.ErrNoTarget)
}
