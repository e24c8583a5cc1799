package cases

import (
	"testing"

	"stv/internal/domain"
)

func TestFilterByID(t *testing.T) {
	all := []domain.TestCase{
		{ID: "positive/simple-sentence"},
		{ID: "positive/single-word"},
		{ID: "negative/empty-input"},
		{ID: "negative/numbers-only"},
	}

	tests := []struct {
		name    string
		pattern string
		wantIDs []string
	}{
		{
			name:    "empty pattern returns all",
			pattern: "",
			wantIDs: []string{"positive/simple-sentence", "positive/single-word", "negative/empty-input", "negative/numbers-only"},
		},
		{
			name:    "scope wildcard",
			pattern: "positive/*",
			wantIDs: []string{"positive/simple-sentence", "positive/single-word"},
		},
		{
			name:    "substring wildcard",
			pattern: "*empty*",
			wantIDs: []string{"negative/empty-input"},
		},
		{
			name:    "plain substring",
			pattern: "single",
			wantIDs: []string{"positive/single-word"},
		},
		{
			name:    "exact ID",
			pattern: "negative/numbers-only",
			wantIDs: []string{"negative/numbers-only"},
		},
		{
			name:    "no match",
			pattern: "realtime/*",
			wantIDs: nil,
		},
	}

	filter := NewFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterByID(all, tt.pattern)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d cases, got %d", len(tt.wantIDs), len(got))
			}
			for i, tc := range got {
				if tc.ID != tt.wantIDs[i] {
					t.Errorf("case %d: expected %q, got %q", i, tt.wantIDs[i], tc.ID)
				}
			}
		})
	}
}

func TestCatalog_Shape(t *testing.T) {
	all := Catalog()
	if len(all) != 10 {
		t.Fatalf("expected 10 scenarios, got %d", len(all))
	}

	positives, negatives := 0, 0
	seen := make(map[string]bool)
	for _, tc := range all {
		if seen[tc.ID] {
			t.Errorf("duplicate scenario ID %q", tc.ID)
		}
		seen[tc.ID] = true
		if tc.IsNegative() {
			negatives++
		} else {
			positives++
		}
	}
	if positives != 5 || negatives != 5 {
		t.Errorf("expected 5 positive and 5 negative scenarios, got %d and %d", positives, negatives)
	}
}

func TestRealtime_IsNotPartOfTheCatalog(t *testing.T) {
	rt := Realtime()
	for _, tc := range Catalog() {
		if tc.ID == rt.ID {
			t.Fatalf("realtime scenario %q must not appear in the catalog", rt.ID)
		}
	}
}
