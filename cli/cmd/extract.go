package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/note35/lamdef/extract"
	"github.com/note35/lamdef/log"
)

// Extract converts the multiline anonymous function at a given line
// into a named declaration and rewrites the call site.
type Extract struct {
	Source string `arg:"" default:"-" help:"Source file to read (\"-\" for stdin)" type:"path"`

	Line  int  `help:"Invocation line (1-based)" required:"" short:"l"`
	Col   int  `help:"Cursor column, reported back after the edit" short:"c"`
	Write bool `help:"Rewrite the source file in place" short:"w"`
}

// Run executes the extract command.
func (e *Extract) Run(ctx context.Context) error {
	src, err := readSource(e.Source)
	if err != nil {
		return err
	}

	buffer := extract.NewSliceBuffer(src.lines...)

	edit, err := extract.ExtractBuffer(ctx,
		buffer,
		extract.Position{Line: e.Line - 1, Col: e.Col},
		EngineFrom(ctx).Options()...,
	)
	if err != nil {
		return err
	}

	extract.Apply(buffer, edit)

	line, col := buffer.Cursor()

	log.InfoContext(ctx, "extracted",
		slog.String("name", edit.Name),
		slog.Int("line", line+1),
		slog.Int("col", col),
	)

	if e.Write {
		return src.write(buffer.Lines())
	}

	_, err = fmt.Fprint(stdout(ctx), src.render(buffer.Lines()))

	return err
}
