package extract

import (
	"regexp"
	"strings"
)

// BindingMode classifies the syntactic context of a lamdef header line.
type BindingMode int

const (
	// Unbound means the keyword appears with no assignment target and no
	// enclosing call signal.
	Unbound BindingMode = iota
	// DirectAssignment means the block is the sole right-hand side of a
	// simple assignment: `name = lamdef(...)`.
	DirectAssignment
	// CallArgument means the block is itself an argument to a call: an
	// open parenthesis precedes the keyword on the line.
	CallArgument
)

// String returns the mode name.
func (m BindingMode) String() string {
	switch m {
	case DirectAssignment:
		return "assignment"
	case CallArgument:
		return "argument"
	default:
		return "unbound"
	}
}

// Header describes the invocation line of a lamdef block.
type Header struct {
	// Params is the raw text between the parentheses after the keyword.
	Params string
	// Mode is the syntactic context classification.
	Mode BindingMode
	// BoundName is the assignment target when Mode is DirectAssignment.
	BoundName string
	// Prefix is all line content strictly before the keyword occurrence.
	// The call-site rewrite reuses it verbatim.
	Prefix string
	// KeywordCol is the byte offset of the keyword on the line.
	KeywordCol int
}

// directAssignRE matches a header prefix that is exactly a simple
// assignment target: optional indent, one identifier, `=`.
var directAssignRE = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*$`)

// analyzeHeader inspects the invocation line and extracts the keyword
// context. It returns ErrNotApplicable when the line has no keyword
// occurrence followed by `(`, and ErrUnparsableParams when the
// parameter list is not balanced on the same line.
func analyzeHeader(line Line, keyword string) (Header, error) {
	col := findKeyword(line.Text, keyword)
	if col < 0 {
		return Header{}, ErrNotApplicable
	}

	params, ok := balancedParams(line.Text[col+len(keyword):])
	if !ok {
		return Header{}, ErrUnparsableParams
	}

	h := Header{
		Params:     params,
		Prefix:     line.Text[:col],
		KeywordCol: col,
	}

	switch {
	case directAssignRE.MatchString(h.Prefix):
		h.Mode = DirectAssignment
		h.BoundName = directAssignRE.FindStringSubmatch(h.Prefix)[1]

	case strings.Contains(h.Prefix, "("):
		h.Mode = CallArgument

	default:
		h.Mode = Unbound
	}

	return h, nil
}

// findKeyword returns the byte offset of the first occurrence of
// keyword in text that is not embedded in a longer identifier and is
// immediately followed by an open parenthesis, or -1.
func findKeyword(text, keyword string) int {
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], keyword)
		if idx < 0 {
			return -1
		}

		idx += from
		end := idx + len(keyword)

		boundedLeft := idx == 0 || !isIdentByte(text[idx-1])
		opensParams := end < len(text) && text[end] == '('

		if boundedLeft && opensParams {
			return idx
		}

		from = end
	}

	return -1
}

// balancedParams extracts the parenthesized segment at the start of
// rest, which must begin with '('. It returns the inner text and
// whether a matching close parenthesis exists on the line.
func balancedParams(rest string) (string, bool) {
	if len(rest) == 0 || rest[0] != '(' {
		return "", false
	}

	depth := 0

	for i := range len(rest) {
		switch rest[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return rest[1:i], true
			}
		}
	}

	return "", false
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
