// Package plan reads operation files: YAML documents listing the component
// edits to run, in order, against Java sources.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/session"
)

// Op names an operation kind.
type Op string

const (
	OpAdd Op = "add"
	OpSet Op = "set"
)

// ErrInvalidPlan wraps every plan loading or validation failure.
var ErrInvalidPlan = errors.New("invalid plan")

// Operation is one edit to one file.
type Operation struct {
	// File is the source path, relative to the plan's directory unless absolute.
	File string `yaml:"file,omitempty"`

	// Class locates the file by fully qualified class name under the
	// project's src/main/java or src/test/java instead of File.
	Class string `yaml:"class,omitempty"`

	Op Op `yaml:"op"`

	// Where is before, after or inside; add only.
	Where string `yaml:"where,omitempty"`

	// CreateLine is the line creating the reference component.
	CreateLine int `yaml:"create_line"`

	// AttachLine is the line attaching the reference component; add only.
	AttachLine int `yaml:"attach_line,omitempty"`

	// Component is the component type name.
	Component string `yaml:"component"`

	// Args are the new component's constructor arguments; add only.
	Args []string `yaml:"args,omitempty"`

	// Method and Value describe the call to set; set only.
	Method string `yaml:"method,omitempty"`
	Value  string `yaml:"value,omitempty"`
}

// Plan is a parsed operation file.
type Plan struct {
	// Project is the project root used to resolve Class and relative File
	// entries. Relative to the plan's directory; defaults to it.
	Project string `yaml:"project,omitempty"`

	Operations []Operation `yaml:"operations"`

	dir string
}

// Load reads and parses the plan at path. Relative paths inside the plan
// resolve against the plan's directory.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolve plan directory: %w", err)
	}
	p.dir = abs

	return p, nil
}

// Parse decodes a plan. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	p := &Plan{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	return p, nil
}

// Root returns the directory Class and relative File entries resolve against.
func (p *Plan) Root() string {
	dir := p.dir
	if dir == "" {
		dir = "."
	}
	if p.Project == "" {
		return dir
	}
	if filepath.IsAbs(p.Project) {
		return p.Project
	}
	return filepath.Join(dir, p.Project)
}

// Path returns the source file of operation i.
func (p *Plan) Path(i int) (string, error) {
	op := p.Operations[i]
	if op.Class != "" {
		path, err := component.SourceFile(p.Root(), op.Class)
		if err != nil {
			return "", fmt.Errorf("operations[%d]: %w", i, err)
		}
		return path, nil
	}
	if filepath.IsAbs(op.File) {
		return op.File, nil
	}
	return filepath.Join(p.Root(), op.File), nil
}

// Build returns the edit builder for the operation.
func (o Operation) Build(registry *component.Registry) (session.BuildFunc, error) {
	typ, err := registry.Lookup(o.Component)
	if err != nil {
		return nil, err
	}

	switch o.Op {
	case OpAdd:
		where, err := component.ParseWhere(o.Where)
		if err != nil {
			return nil, err
		}
		return component.AddComponent(o.CreateLine, o.AttachLine, where, typ, o.Args...), nil
	case OpSet:
		return component.SetAttribute(o.CreateLine, typ, o.Method, o.Value), nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidPlan, o.Op)
	}
}

// String describes the operation for logs and reports.
func (o Operation) String() string {
	target := o.File
	if o.Class != "" {
		target = o.Class
	}
	switch o.Op {
	case OpAdd:
		return fmt.Sprintf("add %s %s line %d in %s", o.Component, o.Where, o.CreateLine, target)
	case OpSet:
		return fmt.Sprintf("set %s.%s at line %d in %s", o.Component, o.Method, o.CreateLine, target)
	default:
		return fmt.Sprintf("%s in %s", o.Op, target)
	}
}
