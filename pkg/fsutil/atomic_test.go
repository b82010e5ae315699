package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/srcedit/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("replaces content and keeps mode", func(t *testing.T) {
		t.Parallel()

		path := writeSource(t, t.TempDir(), "A.java", javaSource)
		if err := os.Chmod(path, 0o600); err != nil {
			t.Fatal(err)
		}

		want := "class A {}\n"
		if err := fsutil.WriteAtomic(context.Background(), path, want, 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("content = %q, want %q", got, want)
		}
		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0o600 {
			t.Errorf("mode = %o, want 600", stat.Mode().Perm())
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "B.java")
		if err := fsutil.WriteAtomic(context.Background(), path, javaSource, 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "C.java")
		if err := fsutil.WriteAtomic(context.Background(), path, javaSource, 0); err == nil {
			t.Error("WriteAtomic() error = nil, want error")
		}
	})
}

func FuzzWriteAtomic(f *testing.F) {
	f.Add("")
	f.Add(javaSource)
	f.Add("class É {}\n")
	f.Add("\x00\x01")

	f.Fuzz(func(t *testing.T, text string) {
		path := filepath.Join(t.TempDir(), "F.java")
		if err := fsutil.WriteAtomic(context.Background(), path, text, 0o644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, snap, err := fsutil.ReadSource(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadSource() error = %v", err)
		}
		if got != text {
			t.Errorf("round trip = %q, want %q", got, text)
		}

		changed, err := fsutil.Changed(context.Background(), snap, true)
		if err != nil {
			t.Fatalf("Changed() error = %v", err)
		}
		if changed {
			t.Error("Changed() = true right after read")
		}
	})
}
