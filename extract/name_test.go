package extract

import "testing"

func TestKeyName(t *testing.T) {
	tests := []struct {
		varName string
		want    string
	}{
		{"sorted_users", "_key_for_users"},
		{"sorted_items", "_key_for_items"},
		{"users", "_user_key"},
		{"items", "_item_key"},
		{"result", "_result_key"},
		{"data", "_data_key"},
		{"x", "_x_key"},
		{"s", "_s_key"},
	}

	for _, tt := range tests {
		t.Run(tt.varName, func(t *testing.T) {
			got := keyName(tt.varName)
			if got != tt.want {
				t.Errorf("keyName(%q) = %q, want %q",
					tt.varName, got, tt.want)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "direct assignment reuses bound name",
			text: "compare = lamdef(a, b):",
			want: "compare",
		},
		{
			name: "call argument derives from assignment target",
			text: "result = filter(lamdef(u):",
			want: "_result_key",
		},
		{
			name: "plural assignment target",
			text: "users = filter(lamdef(u):",
			want: "_user_key",
		},
		{
			name: "sorted assignment target",
			text: "sorted_users = sort(data, key=lamdef(u):",
			want: "_key_for_users",
		},
		{
			name: "no assignment falls back to prefix identifier",
			text: "items.sort(key=lamdef(x):",
			want: "_key_key",
		},
		{
			name: "bare keyword falls back to result",
			text: "lamdef(x):",
			want: "_result_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snap([]string{tt.text})

			h, err := analyzeHeader(snap[0], DefaultKeyword)
			if err != nil {
				t.Fatalf("analyzeHeader() error = %v", err)
			}

			got := resolveName(h, snap[0], nil)
			if got != tt.want {
				t.Errorf("resolveName(%q) = %q, want %q",
					tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveNameWithRule(t *testing.T) {
	rule, err := CompileNameRule(`"_" + join(singular(variable), "fn")`)
	if err != nil {
		t.Fatalf("CompileNameRule() error = %v", err)
	}

	snap := Snap([]string{"users = filter(lamdef(u):"})

	h, err := analyzeHeader(snap[0], DefaultKeyword)
	if err != nil {
		t.Fatalf("analyzeHeader() error = %v", err)
	}

	got := resolveName(h, snap[0], rule)
	if got != "_user_fn" {
		t.Errorf("resolveName() = %q, want %q", got, "_user_fn")
	}

	// A direct assignment ignores the rule entirely.
	snap = Snap([]string{"f = lamdef(x):"})

	h, err = analyzeHeader(snap[0], DefaultKeyword)
	if err != nil {
		t.Fatalf("analyzeHeader() error = %v", err)
	}

	got = resolveName(h, snap[0], rule)
	if got != "f" {
		t.Errorf("resolveName() = %q, want %q", got, "f")
	}
}

func TestNearestIdent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"assignment target wins", "result = filter(lamdef(u):", "result"},
		{"last prefix ident", "items.sort(key=lamdef(x):", "key"},
		{"no identifiers", "lamdef(x):", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snap([]string{tt.text})

			h, err := analyzeHeader(snap[0], DefaultKeyword)
			if err != nil {
				t.Fatalf("analyzeHeader() error = %v", err)
			}

			got := nearestIdent(h, snap[0])
			if got != tt.want {
				t.Errorf("nearestIdent(%q) = %q, want %q",
					tt.text, got, tt.want)
			}
		})
	}
}
