package report

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		testID   string
		expected string
	}{
		{"positive/simple-sentence", "positive_simple-sentence.png"},
		{"negative/multi-line-input", "negative_multi-line-input.png"},
		{"realtime/incremental-typing", "realtime_incremental-typing.png"},
		{`scope\id:variant`, "scope_id_variant.png"},
		{"plain", "plain.png"},
	}

	for _, tt := range tests {
		t.Run(tt.testID, func(t *testing.T) {
			if got := FileName(tt.testID); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
