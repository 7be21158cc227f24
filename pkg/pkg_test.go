package pkg

import (
	"strings"
	"testing"
)

func TestVersionEmbedded(t *testing.T) {
	v := strings.TrimSpace(Version)
	if v == "" {
		t.Fatal("embedded version is empty")
	}

	if strings.Count(v, ".") != 2 {
		t.Errorf("version %q is not semantic", v)
	}
}

func TestName(t *testing.T) {
	if Name != "lamdef" {
		t.Errorf("Name = %q, want %q", Name, "lamdef")
	}
}
