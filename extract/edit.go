package extract

// Edit is the complete, pure description of one extraction: the line
// range to delete, the lines that replace it, and the cursor position
// to report afterwards. Computing an Edit has no side effects; only
// [Apply] mutates anything.
type Edit struct {
	// Name is the resolved declaration name, for user-facing messages.
	Name string
	// DeleteFrom and DeleteTo bound the inclusive range of original
	// lines the edit removes.
	DeleteFrom int
	DeleteTo   int
	// Declaration holds the emitted named declaration, header first.
	Declaration []string
	// Replacement is the rewritten call-site line.
	Replacement string
	// CursorLine and CursorCol give the position to report after the
	// edit: the replacement line, column unchanged from the invocation.
	CursorLine int
	CursorCol  int
}

// Lines returns the full insertion sequence: declaration then
// replacement.
func (e Edit) Lines() []string {
	return append(append([]string(nil), e.Declaration...), e.Replacement)
}

// Apply deletes the edit's original line range from b, inserts the
// declaration and replacement in its place, and moves the cursor. The
// edit was computed against an immutable snapshot, so this is the one
// effectful step; it performs the whole mutation or none of it.
func Apply(b Buffer, e Edit) {
	b.DeleteLines(e.DeleteFrom, e.DeleteTo)
	b.InsertLines(e.DeleteFrom-1, e.Lines())
	b.SetCursor(e.CursorLine, e.CursorCol)
}
