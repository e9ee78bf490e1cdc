package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Main Campus", "Main Campus"},
		{"leading and trailing spaces", "  Main Campus  ", "Main Campus"},
		{"collapses inner whitespace", "Main   \t Campus", "Main Campus"},
		{"newlines collapse", "Main\nCampus", "Main Campus"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	input := "  CS   2024 "
	once := TrimAndNormalize(input)
	twice := TrimAndNormalize(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q vs %q", once, twice)
	}
}

func TestNormalizeBatchName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cs 2024", "CS 2024"},
		{"  cs  2024 ", "CS 2024"},
		{"BCA-7A", "BCA-7A"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeBatchName(tt.input); got != tt.want {
			t.Errorf("NormalizeBatchName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
