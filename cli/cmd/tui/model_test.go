package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/note35/lamdef/extract"
)

func sampleCandidates() []extract.Candidate {
	return extract.Candidates(extract.Snap([]string{
		"result = filter(lamdef(u):",
		"    return u.id",
		")",
		"sorted_users = sort(users, key=lamdef(u):",
		"    return u.name",
		")",
	}), "")
}

func TestMatchCandidatesEmptyFilter(t *testing.T) {
	candidates := sampleCandidates()

	matches := matchCandidates("", candidates)
	if len(matches) != len(candidates) {
		t.Fatalf("len(matches) = %d, want %d", len(matches), len(candidates))
	}

	for i, m := range matches {
		if m.Index != i {
			t.Errorf("matches[%d].Index = %d, want %d", i, m.Index, i)
		}
	}
}

func TestMatchCandidatesNarrows(t *testing.T) {
	candidates := sampleCandidates()

	matches := matchCandidates("sort", candidates)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}

	if candidates[matches[0].Index].Line != 3 {
		t.Errorf("matched line = %d, want 3", candidates[matches[0].Index].Line)
	}
}

func TestMatchCandidatesNoHit(t *testing.T) {
	if matches := matchCandidates("zzzz", sampleCandidates()); len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}

func TestRenderPreview(t *testing.T) {
	edit := extract.Edit{
		Name: "_result_key",
		Declaration: []string{
			"def _result_key(u):",
			"    return u.id",
		},
		Replacement: "result = filter(_result_key)",
	}

	out := renderPreview(edit)

	for _, want := range []string{
		"def _result_key(u):",
		"    return u.id",
		"result = filter(_result_key)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCandidateEllipsizes(t *testing.T) {
	c := extract.Candidate{
		Line:    0,
		Excerpt: strings.Repeat("x", 50),
	}

	out := formatCandidate(c, 20)
	if !strings.Contains(out, "…") {
		t.Errorf("long excerpt not ellipsized: %q", out)
	}

	short := extract.Candidate{Line: 0, Excerpt: "short"}
	if out := formatCandidate(short, 20); strings.Contains(out, "…") {
		t.Errorf("short excerpt ellipsized: %q", out)
	}
}

// Truncation must land on a rune boundary, never mid-character.
func TestFormatCandidateMultibyteTruncation(t *testing.T) {
	c := extract.Candidate{
		Line:    0,
		Excerpt: "idées = trier(données, clé=lamdef(é):" +
			strings.Repeat("é", 40),
	}

	out := formatCandidate(c, 20)

	if !utf8.ValidString(out) {
		t.Errorf("truncated row is not valid UTF-8: %q", out)
	}

	if strings.ContainsRune(out, utf8.RuneError) {
		t.Errorf("truncated row contains replacement rune: %q", out)
	}

	if !strings.Contains(out, "…") {
		t.Errorf("long excerpt not ellipsized: %q", out)
	}
}
