package extract

import "strings"

// Region is the line range occupied by a lamdef block and, when one is
// captured, the closer line that trails it.
//
// Invariants: End >= Start+1, and every line in (Start, End] either has
// indent greater than BaseIndent or is blank.
type Region struct {
	// Start is the invocation (header) line.
	Start int
	// End is the last line of the block body, inclusive.
	End int
	// BaseIndent is the indent of the header line.
	BaseIndent int
	// BodyIndent is the indent the block body is written at.
	BodyIndent int
	// HasCloser reports whether the line after End was folded into the
	// replaced range as a trailing closer.
	HasCloser bool
	// CloserLine is the captured closer's line number.
	CloserLine int
	// CloserText is the captured closer's raw text.
	CloserText string
}

// LastRemoved returns the final line of the range an edit will delete.
func (r Region) LastRemoved() int {
	if r.HasCloser {
		return r.CloserLine
	}

	return r.End
}

// scanState drives the boundary walk. Modeling the offside rule as an
// explicit state machine keeps it testable against synthetic line
// arrays with no editor attached.
type scanState int

const (
	stateInHeader scanState = iota
	stateInBody
	stateSeekingCloser
	stateDone
)

// scanRegion walks the snapshot from the invocation line and finds
// where the block body ends.
//
// The offside rule: a blank line always extends the region, a line
// indented deeper than the header extends the region, and the first
// line at or below the header's indent terminates it (excluded). After
// the walk, a terminator line at exactly the header's indent whose
// content begins with a closing parenthesis is captured as the closer
// and folded into the replaced range.
//
// The walk compares indentation only. A body line that dedents inside a
// string literal terminates the region just the same.
func scanRegion(snap Snapshot, start int) (Region, error) {
	if start < 0 || start >= len(snap)-1 {
		return Region{}, ErrEmptyBody
	}

	region := Region{
		Start:      start,
		End:        start,
		BaseIndent: snap[start].Indent,
		BodyIndent: snap[start+1].Indent,
	}

	state := stateInHeader
	next := start + 1
	stop := -1

	for state != stateDone {
		switch state {
		case stateInHeader:
			state = stateInBody

		case stateInBody:
			if next >= len(snap) {
				state = stateDone

				break
			}

			line := snap[next]
			if line.Blank() || line.Indent > region.BaseIndent {
				region.End = next
				next++

				break
			}

			stop = next
			state = stateSeekingCloser

		case stateSeekingCloser:
			line := snap[stop]
			if line.Indent == region.BaseIndent &&
				strings.HasPrefix(line.Body(), ")") {
				region.HasCloser = true
				region.CloserLine = stop
				region.CloserText = line.Text
			}

			state = stateDone
		}
	}

	if err := normalizeBody(snap, &region); err != nil {
		return Region{}, err
	}

	return region, nil
}

// normalizeBody rejects regions with no content and anchors BodyIndent
// on the first non-blank body line when the line directly under the
// header is blank. Without the adjustment a leading blank line would
// give the whole body a zero reference indent.
func normalizeBody(snap Snapshot, region *Region) error {
	if region.End == region.Start {
		return ErrEmptyBody
	}

	if !snap[region.Start+1].Blank() {
		return nil
	}

	for n := region.Start + 2; n <= region.End; n++ {
		if !snap[n].Blank() {
			region.BodyIndent = snap[n].Indent

			return nil
		}
	}

	return ErrEmptyBody
}
