package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// stdinName is the conventional path argument selecting stdin.
const stdinName = "-"

// source is one loaded source file split into lines, remembering enough
// to write it back exactly.
type source struct {
	path            string
	lines           []string
	trailingNewline bool
}

// readSource loads the named file, or stdin when path is "-" or empty.
func readSource(path string) (*source, error) {
	var (
		data []byte
		err  error
	)

	switch path {
	case "", stdinName:
		path = stdinName
		data, err = io.ReadAll(os.Stdin)

	default:
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, ErrReadSource.Wrap(err).
			With(slog.String("path", path))
	}

	text := string(data)
	trailing := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" || !trailing {
		lines = strings.Split(text, "\n")
	}

	return &source{
		path:            path,
		lines:           lines,
		trailingNewline: trailing,
	}, nil
}

// stdin reports whether the source was read from standard input.
func (s *source) stdin() bool {
	return s.path == stdinName
}

// render joins the lines back into file content, restoring the original
// trailing-newline state.
func (s *source) render(lines []string) string {
	text := strings.Join(lines, "\n")
	if s.trailingNewline && text != "" {
		text += "\n"
	}

	return text
}

// write replaces the source file with the given lines. Writing a source
// that came from stdin is refused; the caller should print instead.
func (s *source) write(lines []string) error {
	if s.stdin() {
		return ErrStdinWrite
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	err := os.WriteFile(s.path, []byte(s.render(lines)), perm)
	if err != nil {
		return ErrWriteSource.Wrap(err).
			With(slog.String("path", s.path))
	}

	return nil
}
