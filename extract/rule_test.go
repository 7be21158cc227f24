package extract

import (
	"errors"
	"testing"
)

func TestCompileNameRule(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantNil bool
		wantErr error
	}{
		{"empty source", "", true, nil},
		{"whitespace source", "  \t ", true, nil},
		{"valid rule", `variable + "_fn"`, false, nil},
		{"syntax error", `join(`, false, ErrRuleCompile},
		{"unknown binding", `no_such_thing + "x"`, false, ErrRuleCompile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileNameRule(tt.source)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CompileNameRule() error = %v, want %v",
						err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("CompileNameRule() error = %v", err)
			}

			if (rule == nil) != tt.wantNil {
				t.Errorf("rule nil = %v, want %v", rule == nil, tt.wantNil)
			}
		})
	}
}

func TestNameRuleEval(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		varName string
		mode    BindingMode
		want    string
		wantOK  bool
	}{
		{
			name:    "simple concatenation",
			source:  `variable + "_fn"`,
			varName: "users",
			mode:    CallArgument,
			want:    "users_fn",
			wantOK:  true,
		},
		{
			name:    "join and singular",
			source:  `"_" + join(singular(variable), "key")`,
			varName: "users",
			mode:    CallArgument,
			want:    "_user_key",
			wantOK:  true,
		},
		{
			name:    "strip prefix",
			source:  `strip(variable, "sorted_")`,
			varName: "sorted_users",
			mode:    CallArgument,
			want:    "users",
			wantOK:  true,
		},
		{
			name:    "mode binding",
			source:  `mode == "argument" ? "arg_fn" : "other_fn"`,
			varName: "x",
			mode:    CallArgument,
			want:    "arg_fn",
			wantOK:  true,
		},
		{
			name:    "non-string result falls back",
			source:  `42`,
			varName: "users",
			mode:    CallArgument,
			wantOK:  false,
		},
		{
			name:    "empty result falls back",
			source:  `""`,
			varName: "users",
			mode:    CallArgument,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileNameRule(tt.source)
			if err != nil {
				t.Fatalf("CompileNameRule() error = %v", err)
			}

			got, ok := rule.eval(tt.varName, tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("eval() ok = %v, want %v", ok, tt.wantOK)
			}

			if ok && got != tt.want {
				t.Errorf("eval() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameRuleNilReceiver(t *testing.T) {
	var rule *NameRule

	if _, ok := rule.eval("users", CallArgument); ok {
		t.Error("nil rule must not produce a name")
	}

	if rule.Source() != "" {
		t.Error("nil rule must have empty source")
	}
}

func TestJoinParts(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"no parts", nil, ""},
		{"single part", []string{"key"}, "key"},
		{"two parts", []string{"user", "key"}, "user_key"},
		{"three parts", []string{"key", "for", "users"}, "key_for_users"},
		{"four parts", []string{"a", "b", "c", "d"}, "a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinParts(tt.parts...)
			if got != tt.want {
				t.Errorf("joinParts(%q) = %q, want %q",
					tt.parts, got, tt.want)
			}
		})
	}
}
