package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/note35/lamdef/extract"
)

var (
	listNumberStyle  = lipgloss.NewStyle().Faint(true)
	listExcerptStyle = lipgloss.NewStyle()
	listCountStyle   = lipgloss.NewStyle().Bold(true)
)

// List prints every line in a source that holds an extractable
// anonymous-function occurrence.
type List struct {
	Source string `arg:"" default:"-" help:"Source file to read (\"-\" for stdin)" type:"path"`

	Count bool `help:"Print only the number of candidates" short:"n"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	src, err := readSource(l.Source)
	if err != nil {
		return err
	}

	engine := EngineFrom(ctx)
	found := extract.Candidates(
		extract.Snap(src.lines), engine.KeywordOrDefault(),
	)

	out := stdout(ctx)

	if l.Count {
		_, err = fmt.Fprintln(out,
			listCountStyle.Render(strconv.Itoa(len(found))))

		return err
	}

	for _, c := range found {
		_, err = fmt.Fprintf(out, "%s\t%s\n",
			listNumberStyle.Render(strconv.Itoa(c.Line+1)),
			listExcerptStyle.Render(c.Excerpt),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
