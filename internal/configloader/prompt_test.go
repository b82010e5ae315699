package configloader

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestConfirmOverwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got, err := ConfirmOverwrite(".srcedit.yml", strings.NewReader(tt.input), &out)
		if err != nil {
			t.Fatalf("ConfirmOverwrite(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), ".srcedit.yml already exists") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestIsInteractive(t *testing.T) {
	t.Parallel()

	if IsInteractive(strings.NewReader("y\n")) {
		t.Error("a string reader is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("a regular file is not a terminal")
	}
}
