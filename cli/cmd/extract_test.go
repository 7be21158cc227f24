package cmd

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/note35/lamdef/extract"
)

func TestExtractRunWritesInPlace(t *testing.T) {
	path := writeTemp(t,
		"result = filter(lamdef(u):\n"+
			"    return u.id\n"+
			")\n")

	cmd := &Extract{Source: path, Line: 1, Write: true}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "def _result_key(u):\n" +
		"    return u.id\n" +
		"result = filter(_result_key)\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestExtractRunHonorsEngineSettings(t *testing.T) {
	path := writeTemp(t, "f = fn(x):\n  return x\n")

	ctx := WithEngine(context.Background(), Engine{
		Keyword:     "fn",
		DeclKeyword: "function",
		IndentStep:  2,
	})

	cmd := &Extract{Source: path, Line: 1, Write: true}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "function f(x):\n  return x\nf = f\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestExtractRunLeavesFileOnError(t *testing.T) {
	content := "print(1)\nprint(2)\n"
	path := writeTemp(t, content)

	cmd := &Extract{Source: path, Line: 1, Write: true}

	err := cmd.Run(context.Background())
	if !errors.Is(err, extract.ErrNotApplicable) {
		t.Fatalf("Run() error = %v, want %v", err, extract.ErrNotApplicable)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}

	if string(data) != content {
		t.Errorf("file modified on error: %q", data)
	}
}
