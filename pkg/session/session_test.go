package session_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/yaklabco/srcedit/internal/javatest"
	"github.com/yaklabco/srcedit/internal/logging"
	"github.com/yaklabco/srcedit/pkg/edit"
	"github.com/yaklabco/srcedit/pkg/fsutil"
	"github.com/yaklabco/srcedit/pkg/parser/treesitter"
	"github.com/yaklabco/srcedit/pkg/session"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

func newSession(opts session.Options) *session.Session {
	return session.New(treesitter.NewJava(), opts)
}

func insertZero(t *testing.T) session.BuildFunc {
	t.Helper()

	return func(tree *syntax.Tree) (edit.Batch, error) {
		return edit.NewBuilder().InsertBefore(statementAt(t, tree, 3), "int z = 0;\n        ").Batch(), nil
	}
}

func TestSession_TransformFile_Writes(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	result, err := newSession(session.DefaultOptions()).TransformFile(context.Background(), path, insertZero(t))
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if !result.Written {
		t.Error("Written = false, want true")
	}
	if result.Summary() != "edited" {
		t.Errorf("Summary() = %q, want edited", result.Summary())
	}
	if got := javatest.ReadFile(t, path); !strings.Contains(got, "int z = 0;\n        int a = 1;") {
		t.Errorf("file not edited:\n%s", got)
	}
	if result.Outcome() != session.OutcomeChanged {
		t.Errorf("Outcome() = %q, want %q", result.Outcome(), session.OutcomeChanged)
	}
}

func TestSession_TransformFile_DryRun(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	opts := session.DefaultOptions()
	opts.DryRun = true

	result, err := newSession(opts).TransformFile(context.Background(), path, insertZero(t))
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if result.Written {
		t.Error("Written = true in dry-run")
	}
	if result.Diff == nil || !result.Diff.HasChanges() {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(result.Diff.String(), "+        int z = 0;") {
		t.Errorf("diff missing insertion:\n%s", result.Diff.String())
	}
	if got := javatest.ReadFile(t, path); got != counter {
		t.Error("dry-run modified the file")
	}
	if result.Summary() != "changes pending" {
		t.Errorf("Summary() = %q, want changes pending", result.Summary())
	}
}

func TestSession_TransformFile_Noop(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&logs, "warn"))

	result, err := newSession(session.DefaultOptions()).TransformFile(ctx, path, func(*syntax.Tree) (edit.Batch, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if result.Changed || result.Written {
		t.Errorf("Changed = %v, Written = %v; want both false", result.Changed, result.Written)
	}
	if !strings.Contains(logs.String(), "unable to edit file") {
		t.Errorf("no-op not logged: %q", logs.String())
	}
	if result.Outcome() != session.OutcomeNoop {
		t.Errorf("Outcome() = %q, want %q", result.Outcome(), session.OutcomeNoop)
	}
}

func TestSession_TransformFile_Backup(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	opts := session.DefaultOptions()
	opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	result, err := newSession(opts).TransformFile(context.Background(), path, insertZero(t))
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if !result.BackupCreated {
		t.Error("BackupCreated = false")
	}
	if got := javatest.ReadFile(t, fsutil.BackupPath(path, fsutil.BackupModeSidecar)); got != counter {
		t.Error("backup does not hold the original text")
	}
}

func TestSession_TransformFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notJava := javatest.WriteFile(t, dir, "notes.md", "# Notes\n")
	broken := javatest.WriteFile(t, dir, "Broken.java", "class Broken { void f( }\n")
	valid := javatest.WriteFile(t, dir, "Counter.java", counter)

	strict := session.DefaultOptions()
	strict.RefuseSyntaxErrors = true

	tests := []struct {
		name string
		path string
		opts session.Options
		want error
	}{
		{"missing file", filepath.Join(dir, "Missing.java"), session.DefaultOptions(), session.ErrFileNotFound},
		{"not java", notJava, session.DefaultOptions(), session.ErrNotJava},
		{"syntax errors refused", broken, strict, session.ErrSyntaxErrors},
		{"directory", dir, session.DefaultOptions(), fsutil.ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newSession(tt.opts).TransformFile(context.Background(), tt.path, func(*syntax.Tree) (edit.Batch, error) {
				return nil, nil
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("failed edit leaves file untouched", func(t *testing.T) {
		t.Parallel()

		_, err := newSession(session.DefaultOptions()).TransformFile(context.Background(), valid, func(tree *syntax.Tree) (edit.Batch, error) {
			return edit.NewBuilder().
				InsertBefore(statementAt(t, tree, 4), "int y = 0;\n        ").
				InsertAfterNeedle(statementAt(t, tree, 3), "@@", "x").
				Batch(), nil
		})
		if !errors.Is(err, edit.ErrNeedleNotFound) {
			t.Fatalf("error = %v, want ErrNeedleNotFound", err)
		}
		if got := javatest.ReadFile(t, valid); got != counter {
			t.Error("file modified by a failed batch")
		}
	})
}

func TestSession_TransformFile_ConcurrentModification(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)
	external := counter + "// touched\n"

	result, err := newSession(session.DefaultOptions()).TransformFile(context.Background(), path, func(tree *syntax.Tree) (edit.Batch, error) {
		if err := os.WriteFile(path, []byte(external), 0o644); err != nil {
			return nil, err
		}
		return edit.NewBuilder().InsertBefore(statementAt(t, tree, 3), "int z = 0;\n        ").Batch(), nil
	})
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if !result.Skipped {
		t.Fatal("Skipped = false, want true")
	}
	if result.SkipReason != "file modified during processing" {
		t.Errorf("SkipReason = %q", result.SkipReason)
	}
	if got := javatest.ReadFile(t, path); got != external {
		t.Error("external change was overwritten")
	}
}

func TestSession_TransformFile_ReparseRejectsBrokenOutput(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	opts := session.DefaultOptions()
	opts.Reparse = true

	result, err := newSession(opts).TransformFile(context.Background(), path, func(tree *syntax.Tree) (edit.Batch, error) {
		return edit.NewBuilder().Replace(statementAt(t, tree, 3), "}}}").Batch(), nil
	})
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if !result.Skipped || result.Written {
		t.Errorf("Skipped = %v, Written = %v; want skipped and unwritten", result.Skipped, result.Written)
	}
	if got := javatest.ReadFile(t, path); got != counter {
		t.Error("broken output was written")
	}
}

func TestSession_TransformFile_WritesUnparseableOutputByDefault(t *testing.T) {
	t.Parallel()

	path := javatest.WriteFile(t, t.TempDir(), "Counter.java", counter)

	result, err := newSession(session.DefaultOptions()).TransformFile(context.Background(), path, func(tree *syntax.Tree) (edit.Batch, error) {
		return edit.NewBuilder().Replace(statementAt(t, tree, 3), "}}}").Batch(), nil
	})
	if err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	if result.Skipped || !result.Written {
		t.Errorf("Skipped = %v, Written = %v; want written", result.Skipped, result.Written)
	}
	if got := javatest.ReadFile(t, path); got != result.Text {
		t.Errorf("file = %q, want edited text %q", got, result.Text)
	}
}

func TestSession_TransformFile_SingleWriterPerPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := javatest.WriteFile(t, dir, "Counter.java", counter)
	alias := filepath.Join(dir, "Alias.java")
	if err := os.Symlink(path, alias); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	s := newSession(session.DefaultOptions())

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			target := path
			if i%2 == 1 {
				target = alias
			}
			_, err := s.TransformFile(context.Background(), target, func(tree *syntax.Tree) (edit.Batch, error) {
				return edit.NewBuilder().InsertBefore(tree.Root.Children[0], fmt.Sprintf("// writer %d\n", i)).Batch(), nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("TransformFile() error = %v", err)
		}
	}

	got := javatest.ReadFile(t, path)
	if n := strings.Count(got, "// writer "); n != writers {
		t.Errorf("found %d writer lines, want %d:\n%s", n, writers, got)
	}
	if s.Locks.Len() != 0 {
		t.Errorf("lock table not drained: %d", s.Locks.Len())
	}
}

func TestSession_TransformFile_EditsThroughSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := javatest.WriteFile(t, dir, "Counter.java", counter)
	link := filepath.Join(dir, "Link.java")
	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := newSession(session.DefaultOptions()).TransformFile(context.Background(), link, insertZero(t)); err != nil {
		t.Fatalf("TransformFile() error = %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("symlink replaced by a regular file")
	}
	if got := javatest.ReadFile(t, path); !strings.Contains(got, "int z = 0;") {
		t.Error("target not edited")
	}
}
