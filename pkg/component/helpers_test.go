package component_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcedit/pkg/parser/treesitter"
	"github.com/yaklabco/srcedit/pkg/session"
)

// run applies build to src and returns the new text.
func run(t *testing.T, src string, build session.BuildFunc) string {
	t.Helper()

	res, err := session.Transform(context.Background(), treesitter.NewJava(), src, build)
	require.NoError(t, err)
	return res.Text
}

// runErr applies build to src and returns the error.
func runErr(t *testing.T, src string, build session.BuildFunc) error {
	t.Helper()

	_, err := session.Transform(context.Background(), treesitter.NewJava(), src, build)
	require.Error(t, err)
	return err
}

// replaceOnce replaces the single occurrence of old in s.
func replaceOnce(t *testing.T, s, old, replacement string) string {
	t.Helper()

	require.Equal(t, 1, strings.Count(s, old), "fixture fragment %q must be unique", old)
	return strings.Replace(s, old, replacement, 1)
}
