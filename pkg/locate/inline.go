package locate

import (
	"errors"
	"fmt"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// Inline target failures.
var (
	ErrNotACall        = errors.New("statement is not a method call")
	ErrNoInlineTarget  = errors.New("no matching inline construction")
	ErrAmbiguousTarget = errors.New("ambiguous inline target")
)

// FindInlineConstruction is the fallback for a statement that declares no
// name, such as add(new Button("x")). It scans the arguments of the
// statement's call for object creations of typeName (simple or qualified;
// empty matches any type).
//
// Exactly one match is returned. None yields ErrNoInlineTarget; more than
// one yields ErrAmbiguousTarget, since nothing on the statement says which
// of them is meant.
func FindInlineConstruction(tree *syntax.Tree, stmt *syntax.Node, typeName string) (*syntax.Node, error) {
	call := CallOf(stmt)
	if call == nil {
		return nil, fmt.Errorf("%w at line %d", ErrNotACall, stmt.Begin().Line)
	}

	want := SimpleName(typeName)

	var matches []*syntax.Node
	for _, arg := range Arguments(call) {
		if arg.Type != TypeObjectCreation {
			continue
		}
		if want == "" || CreationType(tree, arg) == want {
			matches = append(matches, arg)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no new %s(...) argument at line %d", ErrNoInlineTarget, describe(want), stmt.Begin().Line)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d new %s(...) arguments at line %d",
			ErrAmbiguousTarget, len(matches), describe(want), stmt.Begin().Line)
	}
}

func describe(typeName string) string {
	if typeName == "" {
		return "T"
	}
	return typeName
}
