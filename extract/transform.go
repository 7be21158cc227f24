package extract

import "strings"

// DefaultIndentStep is the indentation added to body lines relative to
// the emitted declaration header.
const DefaultIndentStep = 4

// DefaultDeclKeyword introduces the emitted named declaration.
const DefaultDeclKeyword = "def"

// transformBody re-derives the indentation of every body line relative
// to the declaration's nesting depth. Blank lines map to blank lines.
// A non-blank line keeps its indent relative to the body's reference
// indent, so nesting inside the block is preserved exactly; only the
// base offset changes.
func transformBody(snap Snapshot, region Region, step int) []string {
	body := make([]string, 0, region.End-region.Start)

	for n := region.Start + 1; n <= region.End; n++ {
		line := snap[n]
		if line.Blank() {
			body = append(body, "")

			continue
		}

		relative := max(line.Indent-region.BodyIndent, 0)
		indent := region.BaseIndent + step + relative

		body = append(body, strings.Repeat(" ", indent)+line.Body())
	}

	return body
}

// emitDeclaration assembles the standalone named declaration: a header
// at the block's base indent followed by the transformed body. The
// result is self-contained and independent of its insertion point.
func emitDeclaration(
	h Header,
	name string,
	region Region,
	body []string,
	declKeyword string,
) []string {
	header := strings.Repeat(" ", region.BaseIndent) +
		declKeyword + " " + name + "(" + h.Params + "):"

	return append([]string{header}, body...)
}
