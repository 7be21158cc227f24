package extract

// Candidate is a line that holds an extractable lamdef occurrence.
type Candidate struct {
	// Line is the zero-based line number.
	Line int
	// Col is the byte offset of the keyword on the line.
	Col int
	// Indent is the line's leading-whitespace width.
	Indent int
	// Excerpt is the line content with leading whitespace stripped.
	Excerpt string
}

// Candidates enumerates every line in the snapshot containing a
// keyword occurrence that [Extract] would accept as an invocation
// line. Lines whose keyword lacks a balanced parameter list are
// skipped; whether a candidate has a body is only known at extraction
// time.
func Candidates(snap Snapshot, keyword string) []Candidate {
	if keyword == "" {
		keyword = DefaultKeyword
	}

	var found []Candidate

	for _, line := range snap {
		col := findKeyword(line.Text, keyword)
		if col < 0 {
			continue
		}

		if _, ok := balancedParams(line.Text[col+len(keyword):]); !ok {
			continue
		}

		found = append(found, Candidate{
			Line:    line.Number,
			Col:     col,
			Indent:  line.Indent,
			Excerpt: line.Body(),
		})
	}

	return found
}
