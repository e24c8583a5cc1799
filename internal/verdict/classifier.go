package verdict

import "stv/internal/domain"

// Classifier turns a test case and its observed output into a verdict.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify compares actual output against the case's expectation. Matching
// is exact string equality with no normalization: the harness intentionally
// verifies exact rendering. Positive cases pass on a match; negative cases
// pass on any mismatch, including an empty actual output. Negative sentinel
// text gets no special casing, so a malformed non-matching output still
// passes a negative case.
func (c *Classifier) Classify(tc domain.TestCase, actual string) domain.Verdict {
	matched := actual == tc.Expected
	passed := matched
	if tc.IsNegative() {
		passed = !matched
	}
	return domain.Verdict{
		TestID:   tc.ID,
		Actual:   actual,
		Matched:  matched,
		Passed:   passed,
		Negative: tc.IsNegative(),
	}
}
