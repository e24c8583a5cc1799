package domain

// Mode determines how a test case's expected output is asserted.
type Mode int

const (
	// Positive cases pass only when the actual output equals the expected
	// output character for character.
	Positive Mode = iota
	// Negative cases pass whenever the actual output differs from the
	// expected output (which is usually a sentinel placeholder).
	Negative
)

// TestCase represents a single translation scenario to verify against the
// target page. Cases are immutable once defined.
type TestCase struct {
	ID       string // Scoped identifier, e.g. "positive/simple-sentence"
	Input    string // Singlish text to enter (may be empty or multi-line)
	Expected string // Expected Sinhala output, or a sentinel for negative cases
	Mode     Mode   // Positive or Negative
}

// IsNegative reports whether the case asserts must-not-match semantics.
func (tc TestCase) IsNegative() bool {
	return tc.Mode == Negative
}
