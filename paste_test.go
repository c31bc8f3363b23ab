package govt

import "testing"

func TestPasteIsSafe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"plain text", "hello world", true},
		{"newline", "rm -rf /\n", false},
		{"carriage return", "rm -rf /\r", false},
		{"bracketed paste end", "evil\x1b[201~code", false},
		{"bracketed paste end at start", "\x1b[201~", false},
		{"bracketed paste end truncated", "evil\x1b[201", true},
		{"lone escape", "\x1bnotaseq", true},
		{"similar but not matching sequence", "\x1b[200~", true},
		{"unicode text", "héllo wörld 你好", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PasteIsSafe([]byte(tc.in)); got != tc.want {
				t.Errorf("PasteIsSafe(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPasteIsSafe_ScenarioFromSpec(t *testing.T) {
	if PasteIsSafe([]byte("rm -rf /\n")) {
		t.Error("expected unsafe due to trailing newline")
	}
	if PasteIsSafe([]byte("evil\x1b[201~code")) {
		t.Error("expected unsafe due to bracketed paste end marker")
	}
}
