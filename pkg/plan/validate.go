package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/srcedit/pkg/component"
)

// ValidationError describes one invalid plan field.
type ValidationError struct {
	// Index is the operation's position in the plan.
	Index int

	// Field is the YAML key at fault.
	Field string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("operations[%d].%s: %s", e.Index, e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidPlan.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidPlan
}

// Validate checks every operation against registry and returns all problems
// joined, or nil.
func (p *Plan) Validate(registry *component.Registry) error {
	if len(p.Operations) == 0 {
		return fmt.Errorf("%w: no operations", ErrInvalidPlan)
	}

	var errs []error
	add := func(i int, field, format string, args ...any) {
		errs = append(errs, &ValidationError{Index: i, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	for i, op := range p.Operations {
		switch {
		case op.File == "" && op.Class == "":
			add(i, "file", "one of file or class is required")
		case op.File != "" && op.Class != "":
			add(i, "class", "file and class are mutually exclusive")
		}

		if op.CreateLine < 1 {
			add(i, "create_line", "must be >= 1, got %d", op.CreateLine)
		}

		if _, err := registry.Lookup(op.Component); err != nil {
			add(i, "component", "%v", err)
		}

		switch op.Op {
		case OpAdd:
			if op.AttachLine < 1 {
				add(i, "attach_line", "must be >= 1 for add, got %d", op.AttachLine)
			}
			if _, err := component.ParseWhere(op.Where); err != nil {
				add(i, "where", "%v", err)
			}
			if op.Method != "" || op.Value != "" {
				add(i, "method", "method and value apply to set only")
			}
		case OpSet:
			if strings.TrimSpace(op.Method) == "" {
				add(i, "method", "required for set")
			}
			if op.Where != "" || len(op.Args) > 0 {
				add(i, "where", "where and args apply to add only")
			}
		default:
			add(i, "op", "unknown op %q; must be add or set", op.Op)
		}
	}

	return errors.Join(errs...)
}
