package cases

import (
	"path"
	"strings"

	"stv/internal/domain"
)

// Filter selects test cases by ID pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByID filters cases by ID using wildcard matching.
// Supports patterns like "positive/*" or "*empty*".
func (f *Filter) FilterByID(all []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return all
	}

	var filtered []domain.TestCase

	for _, tc := range all {
		// Try to match using path.Match (supports * and ? wildcards)
		matched, err := path.Match(pattern, tc.ID)
		if err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		// If pattern contains wildcards but path.Match didn't match,
		// try a more flexible substring match for patterns like "*empty*"
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(tc.ID, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, tc)
				continue
			}
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(tc.ID, pattern) {
				filtered = append(filtered, tc)
			}
		}
	}

	return filtered
}
