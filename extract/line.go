package extract

import "strings"

// Line is a read-only view of one source line at invocation time.
type Line struct {
	// Number is the zero-based position of the line in its buffer.
	Number int
	// Indent is the width of the line's leading whitespace.
	Indent int
	// Text is the raw line content, including leading whitespace and
	// excluding any line terminator.
	Text string
}

// Blank reports whether the line contains only whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Body returns the line content with leading whitespace stripped.
func (l Line) Body() string {
	return strings.TrimLeft(l.Text, " \t")
}

// indentWidth counts the leading whitespace runes of s.
// Tabs count as width one: the scan compares indentation structurally
// and assumes a source does not mix tabs and spaces within one block.
func indentWidth(s string) int {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return i
		}
	}

	return len(s)
}

// Snapshot is an immutable ordered sequence of source lines.
// All analysis runs against a snapshot; the originating buffer is never
// consulted again until the computed edit is applied.
type Snapshot []Line

// Snap builds a Snapshot from raw line text.
func Snap(lines []string) Snapshot {
	snap := make(Snapshot, len(lines))
	for i, text := range lines {
		snap[i] = Line{Number: i, Indent: indentWidth(text), Text: text}
	}

	return snap
}

// SnapBuffer builds a Snapshot of every line in b.
func SnapBuffer(b Buffer) Snapshot {
	n := b.LineCount()

	lines := make([]string, n)
	for i := range n {
		lines[i] = b.Line(i)
	}

	return Snap(lines)
}
