package extract

import "testing"

func TestRewriteCallSite(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		declNm string
		want   string
	}{
		{
			name: "direct assignment becomes alias",
			lines: []string{
				"f = lamdef(x):",
				"    return x",
			},
			declNm: "f",
			want:   "f = f",
		},
		{
			name: "captured closer is appended trimmed",
			lines: []string{
				"result = filter(lamdef(u):",
				"    return u.id",
				")",
			},
			declNm: "_result_key",
			want:   "result = filter(_result_key)",
		},
		{
			name: "closer keeps trailing arguments",
			lines: []string{
				"out = map(lamdef(v):",
				"    return v * 2",
				"), values)",
			},
			declNm: "_out_key",
			want:   "out = map(_out_key), values)",
		},
		{
			name: "missing closer synthesizes one",
			lines: []string{
				"result = filter(lamdef(u):",
				"    return u.id",
				"next_statement()",
			},
			declNm: "_result_key",
			want:   "result = filter(_result_key)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snap(tt.lines)

			h, err := analyzeHeader(snap[0], DefaultKeyword)
			if err != nil {
				t.Fatalf("analyzeHeader() error = %v", err)
			}

			region, err := scanRegion(snap, 0)
			if err != nil {
				t.Fatalf("scanRegion() error = %v", err)
			}

			got := rewriteCallSite(h, tt.declNm, region)
			if got != tt.want {
				t.Errorf("rewriteCallSite() = %q, want %q", got, tt.want)
			}
		})
	}
}
