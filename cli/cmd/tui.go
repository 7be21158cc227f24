package cmd

import (
	"context"

	"github.com/note35/lamdef/cli/cmd/tui"
	"github.com/note35/lamdef/log"
)

// Tui opens the interactive extraction picker on a source file.
type Tui struct {
	Source string `arg:"" help:"Source file to edit" type:"path"`
}

// Run executes the tui command.
func (t *Tui) Run(ctx context.Context) error {
	src, err := readSource(t.Source)
	if err != nil {
		return err
	}

	engine := EngineFrom(ctx)

	// Stdin sessions are read-only; file sessions save in place.
	var save func(lines []string) error
	if !src.stdin() {
		save = src.write
	}

	return tui.Run(ctx, tui.Options{
		Lines:   src.lines,
		Keyword: engine.KeywordOrDefault(),
		Engine:  engine.Options(),
		Save:    save,
		Logger:  log.Default(),
	})
}
