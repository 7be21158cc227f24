package extract

import (
	"regexp"
	"strings"
)

// fallbackVar is the variable name assumed when no identifier can be
// found near the keyword. It yields the declaration name _result_key.
const fallbackVar = "result"

// assignTargetRE matches the first `identifier =` pair on a line that
// is not part of an equality comparison.
var assignTargetRE = regexp.MustCompile(`([A-Za-z_]\w*)\s*=(?:[^=]|$)`)

// identRE matches a bare identifier token.
var identRE = regexp.MustCompile(`[A-Za-z_]\w*`)

// resolveName derives the declaration name for an analyzed header.
//
// A direct assignment reuses the bound name exactly, so the original
// binding becomes an alias calling the declaration and call sites stay
// textually stable. Every other context falls back to a string-pattern
// heuristic over the nearest binding identifier; no scope or type
// information is consulted, and collisions with existing names are not
// checked.
func resolveName(h Header, line Line, rule *NameRule) string {
	if h.Mode == DirectAssignment {
		return h.BoundName
	}

	varName := nearestIdent(h, line)
	if varName == "" {
		varName = fallbackVar
	}

	if rule != nil {
		if name, ok := rule.eval(varName, h.Mode); ok {
			return name
		}
	}

	return keyName(varName)
}

// nearestIdent locates the identifier the synthetic name derives from:
// the first assignment target on the line when one exists, otherwise
// the identifier token nearest before the keyword.
func nearestIdent(h Header, line Line) string {
	if m := assignTargetRE.FindStringSubmatch(line.Text); m != nil {
		return m[1]
	}

	idents := identRE.FindAllString(h.Prefix, -1)
	if len(idents) == 0 {
		return ""
	}

	return idents[len(idents)-1]
}

// keyName wraps a variable name into a synthetic key-function name.
//
//	sorted_users -> _key_for_users
//	users        -> _user_key
//	result       -> _result_key
func keyName(varName string) string {
	if rest, ok := strings.CutPrefix(varName, "sorted_"); ok && rest != "" {
		return "_key_for_" + rest
	}

	if singular, ok := strings.CutSuffix(varName, "s"); ok && singular != "" {
		return "_" + singular + "_key"
	}

	return "_" + varName + "_key"
}
