// Package cases holds the enumerated verification scenarios. The catalog is
// fixed: cases are literals, immutable once defined.
package cases

import "stv/internal/domain"

// NoOutputSentinel is the expected-output placeholder for negative cases
// where no meaningful Sinhala output should appear. The classifier does not
// treat it specially; it only asserts non-equality.
const NoOutputSentinel = "No meaningful Sinhala output expected"

// Catalog returns the ordered scenario list executed by a run.
func Catalog() []domain.TestCase {
	return []domain.TestCase{
		{
			ID:       "positive/simple-sentence",
			Input:    "mama gedhara yanavaa.",
			Expected: "මම ගෙදර යනවා.",
			Mode:     domain.Positive,
		},
		{
			ID:       "positive/greeting",
			Input:    "ayubowan",
			Expected: "ආයුබෝවන්",
			Mode:     domain.Positive,
		},
		{
			ID:       "positive/question",
			Input:    "oyaata kohomadha",
			Expected: "ඔයාට කොහොමද",
			Mode:     domain.Positive,
		},
		{
			ID:       "positive/single-word",
			Input:    "amma",
			Expected: "අම්මා",
			Mode:     domain.Positive,
		},
		{
			ID:       "positive/plural-pronoun",
			Input:    "api yamu",
			Expected: "අපි යමු",
			Mode:     domain.Positive,
		},
		{
			ID:       "negative/empty-input",
			Input:    "",
			Expected: NoOutputSentinel,
			Mode:     domain.Negative,
		},
		{
			ID:       "negative/numbers-only",
			Input:    "1234567890",
			Expected: NoOutputSentinel,
			Mode:     domain.Negative,
		},
		{
			ID:       "negative/symbols-only",
			Input:    "@#$%^&*()",
			Expected: NoOutputSentinel,
			Mode:     domain.Negative,
		},
		{
			// A plausible but wrong literal: the page must not translate
			// "mama" to the word for "home".
			ID:       "negative/wrong-translation",
			Input:    "mama",
			Expected: "ගෙදර",
			Mode:     domain.Negative,
		},
		{
			ID:       "negative/multi-line-input",
			Input:    "mama\ngedhara",
			Expected: NoOutputSentinel,
			Mode:     domain.Negative,
		},
	}
}

// Realtime returns the dedicated UI-responsiveness scenario, executed by the
// realtime monitor rather than the translation driver.
func Realtime() domain.TestCase {
	return domain.TestCase{
		ID:       "realtime/incremental-typing",
		Input:    "mama",
		Expected: "මම",
		Mode:     domain.Positive,
	}
}
