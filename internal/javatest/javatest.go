// Package javatest holds Java fixtures and helpers shared by tests.
package javatest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/srcedit/pkg/parser/treesitter"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

// DemoFile is a view with components created in every shape the editor
// understands: declarations, assignments to fields, split declarations,
// and an inline construction inside an add call.
const DemoFile = `package com.example.demo;

import com.vaadin.flow.component.button.Button;
import com.vaadin.flow.component.notification.Notification;
import com.vaadin.flow.component.orderedlayout.HorizontalLayout;
import com.vaadin.flow.component.textfield.TextField;
import com.vaadin.flow.router.Route;

@Route("")
public class DemoFile extends HorizontalLayout {

    private TextField name;
    private Button sayHello;

    public DemoFile() {
        name = new TextField("Your name");
        sayHello = new Button("Say hello1");
        Button sayHello2 = new Button("Say hello2");
        Button sayHello3;
        sayHello3 = new Button("Say hello3");
        Button sayHello4 = new Button();
        Button sayHello5 = new Button();
        sayHello5.setText("Say hello5");
        sayHello.addClickListener(e -> {
            Notification.show("Hello " + name.getValue());
        });

        setMargin(true);
        add(name, sayHello, sayHello2, sayHello3, sayHello4);
        add(sayHello5, new Button("Say hello6"));
        add(new Button("One"), new Button("Two"));
    }
}
`

// EmptyView is a routed view without a constructor.
const EmptyView = `package com.example.demo;

import com.vaadin.flow.component.orderedlayout.VerticalLayout;
import com.vaadin.flow.router.Route;

@Route("empty")
public class EmptyView extends VerticalLayout {
}
`

// EmptyViewWithConstructor is a routed view with an empty constructor.
const EmptyViewWithConstructor = `package com.example.demo;

import com.vaadin.flow.component.orderedlayout.VerticalLayout;
import com.vaadin.flow.router.Route;

@Route("empty")
public class EmptyView extends VerticalLayout {

    public EmptyView() {
    }
}
`

// Parse parses Java source, failing the test on error or syntax errors.
func Parse(t testing.TB, src string) *syntax.Tree {
	t.Helper()

	tree, err := treesitter.NewJava().Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tree.HasErrors {
		t.Fatalf("fixture has syntax errors")
	}
	return tree
}

// LineOf returns the 1-based line of the first occurrence of fragment.
func LineOf(t testing.TB, src, fragment string) int {
	t.Helper()

	idx := strings.Index(src, fragment)
	if idx < 0 {
		t.Fatalf("fragment %q not found", fragment)
	}
	return strings.Count(src[:idx], "\n") + 1
}

// WriteFile writes src to name inside dir, creating dir if needed, and
// returns the path.
func WriteFile(t testing.TB, dir, name, src string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
