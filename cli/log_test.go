package cli

import "testing"

func TestSplitFlag(t *testing.T) {
	tests := []struct {
		arg          string
		wantName     string
		wantValue    string
		wantAssigned bool
	}{
		{"--log-level=debug", "--log-level", "debug", true},
		{"--log-level", "--log-level", "", false},
		{"--name-rule=a = b", "--name-rule", "a = b", true},
		{"plain", "plain", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value, assigned := splitFlag(tt.arg)
			if name != tt.wantName || value != tt.wantValue ||
				assigned != tt.wantAssigned {
				t.Errorf("splitFlag(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.arg, name, value, assigned,
					tt.wantName, tt.wantValue, tt.wantAssigned)
			}
		})
	}
}

func TestLogConfigScan(t *testing.T) {
	var f logConfig

	f.scan([]string{
		"extract", "--log-level=error", "--log-format", "json",
		"--log-pretty", "src.py",
	})

	if f.Level != "error" {
		t.Errorf("Level = %q, want %q", f.Level, "error")
	}

	if f.Format != "json" {
		t.Errorf("Format = %q, want %q", f.Format, "json")
	}

	if !f.Pretty {
		t.Error("Pretty not set")
	}
}

func TestLogConfigScanNegatedBool(t *testing.T) {
	var f logConfig

	f.Pretty = true

	f.scan([]string{"--no-log-pretty"})

	if f.Pretty {
		t.Error("Pretty not cleared by --no-log-pretty")
	}
}
