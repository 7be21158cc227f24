package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/note35/lamdef/extract"
	"github.com/note35/lamdef/log"
)

// Options configures one picker session.
type Options struct {
	// Lines is the source content to pick from.
	Lines []string
	// Keyword is the anonymous-function keyword to list.
	Keyword string
	// Engine holds the extraction options applied to every edit.
	Engine []extract.Option
	// Save persists the edited lines. A nil Save makes the session
	// read-only; applied edits are kept in memory but cannot be saved.
	Save func(lines []string) error
	// Logger receives trace events. The zero logger discards them.
	Logger log.Logger
}

// Run starts the interactive picker and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Lines) == 0 {
		return ErrNoSource
	}

	buffer := extract.NewSliceBuffer(opts.Lines...)

	candidates := extract.Candidates(extract.SnapBuffer(buffer), opts.Keyword)
	if len(candidates) == 0 {
		return ErrNoCandidates
	}

	opts.Logger.TraceContext(ctx, "tui start",
		slog.Int("line_count", len(opts.Lines)),
		slog.Int("candidate_count", len(candidates)),
	)

	m := newModel(ctx, buffer, candidates, opts)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(model); ok {
		return fm.err
	}

	return nil
}
