package extract

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/mung"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrRuleCompile is returned when a name-rule expression fails to
// compile.
var ErrRuleCompile = NewError("name rule compilation failed")

// NameRule is a compiled user-defined naming expression. It replaces
// the built-in synthetic-name heuristic for non-assignment contexts
// while keeping name resolution total: a rule that errors or yields an
// empty or non-string result falls back to the heuristic.
type NameRule struct {
	source  string
	program *vm.Program
}

// CompileNameRule compiles an expr-lang naming expression. The
// expression is evaluated with these bindings:
//
//	variable  string  identifier the name derives from (e.g. "users")
//	mode      string  "argument" or "unbound"
//	join(...) string  joins its arguments with "_"
//	strip     func    removes a prefix: strip("sorted_users", "sorted_")
//	singular  func    drops a trailing plural "s"
//
// Example rule, reproducing the built-in heuristic's plural case:
//
//	"_" + join(singular(variable), "key")
func CompileNameRule(source string) (*NameRule, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(ruleEnv("", "")))
	if err != nil {
		return nil, ErrRuleCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return &NameRule{source: source, program: program}, nil
}

// Source returns the rule's expression text.
func (r *NameRule) Source() string {
	if r == nil {
		return ""
	}

	return r.source
}

// eval runs the rule for a derived variable name. ok is false whenever
// the result is unusable, signaling the caller to use the heuristic.
func (r *NameRule) eval(varName string, mode BindingMode) (string, bool) {
	if r == nil || r.program == nil {
		return "", false
	}

	out, err := expr.Run(r.program, ruleEnv(varName, mode.String()))
	if err != nil {
		return "", false
	}

	name, ok := out.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}

	return strings.TrimSpace(name), true
}

// ruleEnv builds the expression environment for one evaluation.
func ruleEnv(varName, mode string) map[string]any {
	return map[string]any{
		"variable": varName,
		"mode":     mode,
		"join":     joinParts,
		"strip": func(s, prefix string) string {
			return strings.TrimPrefix(s, prefix)
		},
		"singular": func(s string) string {
			return strings.TrimSuffix(s, "s")
		},
	}
}

// joinParts joins name fragments with underscores. Leading
// underscores are spelled with expression concatenation, not an empty
// first fragment: `"_" + join("user", "key")`.
//
// Each prefix item is prepended to the front of the subject in turn,
// so the leading fragments must be supplied in reverse to keep their
// written order.
func joinParts(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	lead := slices.Clone(parts[:len(parts)-1])
	slices.Reverse(lead)

	joined := mung.Make(
		mung.WithSubjectItems(parts[len(parts)-1]),
		mung.WithDelim("_"),
		mung.WithPrefixItems(lead...),
	).String()

	return joined
}
