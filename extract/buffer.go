package extract

// Buffer is the minimal host-text seam. Any editor buffer that can
// read lines, delete a range, insert lines, and move the cursor can
// apply an [Edit]. Line numbers are zero-based throughout.
type Buffer interface {
	// Line returns the raw text of line n without its terminator.
	Line(n int) string
	// LineCount returns the number of lines in the buffer.
	LineCount() int
	// DeleteLines removes the inclusive line range [from, to].
	DeleteLines(from, to int)
	// InsertLines inserts lines after line `after`; after == -1 inserts
	// at the top of the buffer.
	InsertLines(after int, lines []string)
	// SetCursor moves the cursor to the given line and column.
	SetCursor(line, col int)
}

// SliceBuffer is a slice-backed Buffer. It backs the CLI file path and
// the interactive host, and stands in for an editor buffer in tests.
type SliceBuffer struct {
	lines   []string
	curLine int
	curCol  int
}

// NewSliceBuffer creates a buffer holding the given lines.
func NewSliceBuffer(lines ...string) *SliceBuffer {
	return &SliceBuffer{lines: append([]string(nil), lines...)}
}

// Line implements [Buffer].
func (b *SliceBuffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}

	return b.lines[n]
}

// LineCount implements [Buffer].
func (b *SliceBuffer) LineCount() int { return len(b.lines) }

// DeleteLines implements [Buffer].
func (b *SliceBuffer) DeleteLines(from, to int) {
	if from < 0 {
		from = 0
	}

	if to >= len(b.lines) {
		to = len(b.lines) - 1
	}

	if from > to {
		return
	}

	b.lines = append(b.lines[:from], b.lines[to+1:]...)
}

// InsertLines implements [Buffer].
func (b *SliceBuffer) InsertLines(after int, lines []string) {
	at := after + 1
	if at < 0 {
		at = 0
	}

	if at > len(b.lines) {
		at = len(b.lines)
	}

	b.lines = append(
		b.lines[:at],
		append(append([]string(nil), lines...), b.lines[at:]...)...,
	)
}

// SetCursor implements [Buffer].
func (b *SliceBuffer) SetCursor(line, col int) {
	b.curLine, b.curCol = line, col
}

// Lines returns a copy of the buffer content.
func (b *SliceBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Cursor returns the last cursor position set on the buffer.
func (b *SliceBuffer) Cursor() (line, col int) {
	return b.curLine, b.curCol
}
