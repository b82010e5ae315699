// Package component builds edit batches that add UI components to a Java
// view and change their attributes. It decides what to edit; the edit and
// session packages decide how.
package component

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/srcedit/pkg/config"
)

// Errors returned while building edits.
var (
	ErrNoTarget     = errors.New("cannot find target")
	ErrUnknownType  = errors.New("unknown component type")
	ErrInvalidWhere = errors.New("invalid placement")
	ErrUnsupported  = errors.New("unsupported edit")
	ErrInvalidType  = errors.New("invalid component type")
)

// Type describes a component class.
type Type struct {
	// Name is the registry key.
	Name string

	// ClassName is the fully qualified class name.
	ClassName string

	// Property is the setter whose value the constructor's single string
	// argument sets, e.g. setText for a button. Empty when there is none.
	Property string
}

// SimpleName returns the class name without its package.
func (t Type) SimpleName() string {
	if i := strings.LastIndexByte(t.ClassName, '.'); i >= 0 {
		return t.ClassName[i+1:]
	}
	return t.ClassName
}

// Package returns the package part of the class name.
func (t Type) Package() string {
	if i := strings.LastIndexByte(t.ClassName, '.'); i >= 0 {
		return t.ClassName[:i]
	}
	return ""
}

// Built-in component types.
var (
	Button = Type{
		Name:      "button",
		ClassName: "com.vaadin.flow.component.button.Button",
		Property:  "setText",
	}
	TextField = Type{
		Name:      "textfield",
		ClassName: "com.vaadin.flow.component.textfield.TextField",
		Property:  "setLabel",
	}
)

// Registry maps names to component types.
type Registry struct {
	types map[string]Type
}

// NewRegistry returns a registry holding the built-in types plus extra.
// An extra type may replace a built-in of the same name.
func NewRegistry(extra ...config.ComponentConfig) (*Registry, error) {
	r := &Registry{types: make(map[string]Type)}
	r.add(Button)
	r.add(TextField)

	for _, c := range extra {
		if c.Name == "" || c.Class == "" {
			return nil, fmt.Errorf("%w: name and class are required (got %q, %q)", ErrInvalidType, c.Name, c.Class)
		}
		if strings.ContainsAny(c.Class, " \t;") {
			return nil, fmt.Errorf("%w: class %q", ErrInvalidType, c.Class)
		}
		r.add(Type{Name: c.Name, ClassName: c.Class, Property: c.Property})
	}

	return r, nil
}

func (r *Registry) add(t Type) {
	r.types[strings.ToLower(t.Name)] = t
}

// Lookup finds a type by name, case-insensitively. The simple class name
// works as well, so "TextField" and "textfield" both resolve.
func (r *Registry) Lookup(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := r.types[key]; ok {
		return t, nil
	}
	for _, t := range r.types {
		if strings.EqualFold(t.SimpleName(), key) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Types returns all registered types sorted by name.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Type) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Where places a new component relative to a reference component.
type Where int

const (
	Before Where = iota + 1
	After
	Inside
)

func (w Where) String() string {
	switch w {
	case Before:
		return "before"
	case After:
		return "after"
	case Inside:
		return "inside"
	default:
		return fmt.Sprintf("where(%d)", int(w))
	}
}

// ParseWhere parses before, after or inside.
func ParseWhere(s string) (Where, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return Before, nil
	case "after":
		return After, nil
	case "inside":
		return Inside, nil
	default:
		return 0, fmt.Errorf("%w: %q (want before, after or inside)", ErrInvalidWhere, s)
	}
}
