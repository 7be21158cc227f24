package extract

import "strings"

// rewriteCallSite produces the single line that replaces the original
// block with a reference to the new declaration.
//
// A direct assignment becomes an alias assignment (`f = f` after the
// declaration `def f(...)`), so nothing downstream of the binding
// changes. Otherwise the header prefix is reused verbatim and the
// trailing syntax is recovered: a captured closer line contributes its
// trimmed content, and with no closer the block is assumed to have been
// a parenthesized call argument missing its close on its own line, so a
// single `)` is appended. The append is a heuristic, not a parse-
// verified fact.
func rewriteCallSite(h Header, name string, region Region) string {
	site := h.Prefix + name

	if h.Mode == DirectAssignment {
		return site
	}

	if region.HasCloser {
		return site + strings.TrimSpace(region.CloserText)
	}

	return site + ")"
}
