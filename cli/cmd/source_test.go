package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.py")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadSourceSplitsLines(t *testing.T) {
	path := writeTemp(t, "one\ntwo\nthree\n")

	src, err := readSource(path)
	if err != nil {
		t.Fatalf("readSource() error = %v", err)
	}

	want := []string{"one", "two", "three"}
	if !slices.Equal(src.lines, want) {
		t.Errorf("lines = %q, want %q", src.lines, want)
	}

	if !src.trailingNewline {
		t.Error("trailing newline not detected")
	}
}

func TestReadSourceNoTrailingNewline(t *testing.T) {
	path := writeTemp(t, "one\ntwo")

	src, err := readSource(path)
	if err != nil {
		t.Fatalf("readSource() error = %v", err)
	}

	want := []string{"one", "two"}
	if !slices.Equal(src.lines, want) {
		t.Errorf("lines = %q, want %q", src.lines, want)
	}

	if src.trailingNewline {
		t.Error("trailing newline falsely detected")
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := readSource(filepath.Join(t.TempDir(), "absent.py"))
	if !errors.Is(err, ErrReadSource) {
		t.Fatalf("readSource() error = %v, want %v", err, ErrReadSource)
	}
}

func TestSourceRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"with trailing newline", "a\nb\n"},
		{"without trailing newline", "a\nb"},
		{"single line", "only\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)

			src, err := readSource(path)
			if err != nil {
				t.Fatalf("readSource() error = %v", err)
			}

			if got := src.render(src.lines); got != tt.content {
				t.Errorf("render() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestSourceWrite(t *testing.T) {
	path := writeTemp(t, "old\n")

	src, err := readSource(path)
	if err != nil {
		t.Fatalf("readSource() error = %v", err)
	}

	if err := src.write([]string{"new", "content"}); err != nil {
		t.Fatalf("write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "new\ncontent\n" {
		t.Errorf("file = %q, want %q", data, "new\ncontent\n")
	}
}

func TestSourceWriteStdinRefused(t *testing.T) {
	src := &source{path: stdinName}

	err := src.write([]string{"x"})
	if !errors.Is(err, ErrStdinWrite) {
		t.Fatalf("write() error = %v, want %v", err, ErrStdinWrite)
	}
}
