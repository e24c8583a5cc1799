package extract

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

// fakePage implements browser.Page with canned responses per tier.
type fakePage struct {
	texts     []string
	textsErr  error
	values    []string
	valuesErr error
	body      string
	bodyErr   error
}

func (p *fakePage) Navigate(string) error                               { return nil }
func (p *fakePage) Clear(string) error                                  { return nil }
func (p *fakePage) Fill(string, string) error                           { return nil }
func (p *fakePage) TypeSequential(string, string, time.Duration) error  { return nil }
func (p *fakePage) Value(string) (string, error)                        { return "", nil }
func (p *fakePage) TextsMatching(*regexp.Regexp) ([]string, error)      { return p.texts, p.textsErr }
func (p *fakePage) ControlValues(string) ([]string, error)              { return p.values, p.valuesErr }
func (p *fakePage) BodyText() (string, error)                           { return p.body, p.bodyErr }
func (p *fakePage) Screenshot(string) error                             { return nil }
func (p *fakePage) Wait(time.Duration)                                  {}
func (p *fakePage) Close() error                                        { return nil }

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		page     *fakePage
		expected string
	}{
		{
			name:     "script scan takes last matching element",
			page:     &fakePage{texts: []string{"සිංහල අකුරු", "මම ගෙදර යනවා."}},
			expected: "මම ගෙදර යනවා.",
		},
		{
			name: "script scan wins over later tiers",
			page: &fakePage{
				texts:  []string{"මම"},
				values: []string{"input text", "වෙනත්"},
				body:   "අපි",
			},
			expected: "මම",
		},
		{
			name:     "script scan trims whitespace",
			page:     &fakePage{texts: []string{"  මම  "}},
			expected: "මම",
		},
		{
			name:     "second control fallback",
			page:     &fakePage{values: []string{"mama", "මම"}},
			expected: "මම",
		},
		{
			name:     "single control is not enough for positional fallback",
			page:     &fakePage{values: []string{"මම"}},
			expected: "",
		},
		{
			name:     "body scan is the last resort",
			page:     &fakePage{body: "Translate here: මම ගෙදර"},
			expected: "මම ගෙදර",
		},
		{
			name:     "empty second control falls through to body",
			page:     &fakePage{values: []string{"mama", "   "}, body: "මම"},
			expected: "මම",
		},
		{
			name:     "all tiers exhausted returns empty",
			page:     &fakePage{body: "no sinhala anywhere"},
			expected: "",
		},
		{
			name: "tier errors fall through instead of failing",
			page: &fakePage{
				textsErr:  errors.New("locator detached"),
				valuesErr: errors.New("control not found"),
				body:      "still found මම here",
			},
			expected: "මම",
		},
		{
			name: "every tier erroring yields empty",
			page: &fakePage{
				textsErr:  errors.New("boom"),
				valuesErr: errors.New("boom"),
				bodyErr:   errors.New("boom"),
			},
			expected: "",
		},
	}

	extractor := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.page)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestScriptPattern_Boundaries(t *testing.T) {
	// U+0D80-U+0DFF is a closed range; both boundaries are part of the
	// contract.
	tests := []struct {
		name    string
		text    string
		matches bool
	}{
		{"range start", string(rune(0x0D80)), true},
		{"range end", string(rune(0x0DFF)), true},
		{"common letter", "ම", true},
		{"just below range", string(rune(0x0D7F)), false},
		{"just above range", string(rune(0x0E00)), false},
		{"latin text", "mama", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scriptPattern.MatchString(tt.text); got != tt.matches {
				t.Errorf("MatchString(%q) = %v, want %v", tt.text, got, tt.matches)
			}
		})
	}
}

func TestBodyPattern_AllowsInteriorWhitespace(t *testing.T) {
	got := bodyPattern.FindString("prefix මම ගෙදර යනවා suffix")
	if got != "මම ගෙදර යනවා " {
		t.Errorf("unexpected body match %q", got)
	}
}
