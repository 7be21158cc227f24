package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/note35/lamdef/extract"
	"github.com/note35/lamdef/log"
)

const (
	filterPrompt = "/ "
	defaultWidth = 80
	maxVisible   = 8
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	excerptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	declStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	siteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the Bubble Tea model for the extraction picker.
type model struct {
	ctxFunc    func() context.Context
	filter     textinput.Model
	buffer     *extract.SliceBuffer
	candidates []extract.Candidate
	matches    fuzzy.Matches
	selected   int
	keyword    string
	engine     []extract.Option
	save       func(lines []string) error
	logger     log.Logger
	status     string
	statusErr  bool
	dirty      bool
	width      int
	quitting   bool
	err        error
}

func newModel(
	ctx context.Context,
	buffer *extract.SliceBuffer,
	candidates []extract.Candidate,
	opts Options,
) model {
	ti := textinput.New()
	ti.Prompt = titleStyle.Render(filterPrompt)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	m := model{
		ctxFunc:    func() context.Context { return ctx },
		filter:     ti,
		buffer:     buffer,
		candidates: candidates,
		keyword:    opts.Keyword,
		engine:     opts.Engine,
		save:       opts.Save,
		logger:     opts.Logger,
		width:      defaultWidth,
	}

	m.matches = matchCandidates("", m.candidates)

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.filter.Width = msg.Width - len(filterPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.filter, cmd = m.filter.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "tui keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}

		return m, nil

	case tea.KeyDown:
		if m.selected < len(m.matches)-1 {
			m.selected++
		}

		return m, nil

	case tea.KeyEnter:
		return m.applySelected()

	case tea.KeyCtrlS:
		return m.saveBuffer()
	}

	var cmd tea.Cmd

	m.filter, cmd = m.filter.Update(msg)
	m.matches = matchCandidates(m.filter.Value(), m.candidates)

	if m.selected >= len(m.matches) {
		m.selected = max(len(m.matches)-1, 0)
	}

	return m, cmd
}

// applySelected runs the extraction for the selected candidate and
// mutates the working buffer on success. The candidate list is then
// recomputed, since line numbers shift and the extracted occurrence
// disappears.
func (m model) applySelected() (model, tea.Cmd) {
	if m.selected >= len(m.matches) {
		return m, nil
	}

	candidate := m.candidates[m.matches[m.selected].Index]

	edit, err := extract.ExtractBuffer(m.ctxFunc(),
		m.buffer,
		extract.Position{Line: candidate.Line, Col: candidate.Col},
		m.engine...,
	)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true

		return m, nil
	}

	extract.Apply(m.buffer, edit)

	m.dirty = true
	m.status = "extracted " + edit.Name
	m.statusErr = false

	m.logger.TraceContext(m.ctxFunc(), "tui apply",
		slog.String("name", edit.Name),
		slog.Int("line", candidate.Line),
	)

	m.candidates = extract.Candidates(
		extract.SnapBuffer(m.buffer), m.keyword,
	)
	m.filter.SetValue("")
	m.matches = matchCandidates("", m.candidates)
	m.selected = 0

	if len(m.candidates) == 0 {
		return m.saveAndQuit()
	}

	return m, nil
}

func (m model) saveBuffer() (model, tea.Cmd) {
	if m.save == nil {
		m.status = ErrReadOnly.Error()
		m.statusErr = true

		return m, nil
	}

	if err := m.save(m.buffer.Lines()); err != nil {
		m.status = err.Error()
		m.statusErr = true

		return m, nil
	}

	m.dirty = false
	m.status = "saved"
	m.statusErr = false

	return m, nil
}

// saveAndQuit persists pending edits and exits. It runs when the last
// candidate has been extracted. Save failures surface as the session
// error so the CLI reports them after the program exits.
func (m model) saveAndQuit() (model, tea.Cmd) {
	if m.dirty && m.save != nil {
		if err := m.save(m.buffer.Lines()); err != nil {
			m.err = err
		}
	}

	m.quitting = true

	return m, tea.Quit
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(
		strconv.Itoa(len(m.matches)) + " extractable"))

	if m.dirty {
		b.WriteString(statusStyle.Render(" [modified]"))
	}

	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString(m.previewView())

	switch {
	case m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(
		"enter: extract · ctrl+s: save · esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) listView() string {
	var b strings.Builder

	first := 0
	if m.selected >= maxVisible {
		first = m.selected - maxVisible + 1
	}

	for i := first; i < len(m.matches) && i < first+maxVisible; i++ {
		candidate := m.candidates[m.matches[i].Index]
		row := formatCandidate(candidate, m.width)

		if i == m.selected {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(row)
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (m model) previewView() string {
	if m.selected >= len(m.matches) {
		return ""
	}

	candidate := m.candidates[m.matches[m.selected].Index]

	edit, err := extract.ExtractBuffer(m.ctxFunc(),
		m.buffer,
		extract.Position{Line: candidate.Line, Col: candidate.Col},
		m.engine...,
	)
	if err != nil {
		return errorStyle.Render("✗ "+err.Error()) + "\n"
	}

	return renderPreview(edit) + "\n"
}

// formatCandidate renders one list row, ellipsized to fit the width.
// Truncation counts runes so a multi-byte character is never split.
func formatCandidate(c extract.Candidate, width int) string {
	number := strconv.Itoa(c.Line + 1)

	excerpt := c.Excerpt
	if avail := width - len(number) - 2; avail > 0 {
		if runes := []rune(excerpt); len(runes) > avail {
			excerpt = string(runes[:avail]) + "…"
		}
	}

	return numberStyle.Render(number) + " " + excerptStyle.Render(excerpt)
}

// matchCandidates fuzzy-matches the filter text against candidate
// excerpts. An empty filter matches everything in order.
func matchCandidates(
	filter string,
	candidates []extract.Candidate,
) fuzzy.Matches {
	excerpts := make([]string, len(candidates))
	for i, c := range candidates {
		excerpts[i] = c.Excerpt
	}

	if strings.TrimSpace(filter) == "" {
		matches := make(fuzzy.Matches, len(candidates))
		for i, e := range excerpts {
			matches[i] = fuzzy.Match{Str: e, Index: i}
		}

		return matches
	}

	return fuzzy.Find(filter, excerpts)
}

// renderPreview formats the declaration and rewritten call site an
// edit would produce.
func renderPreview(edit extract.Edit) string {
	var b strings.Builder

	for _, line := range edit.Declaration {
		b.WriteString(declStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(siteStyle.Render(edit.Replacement))

	return b.String()
}
