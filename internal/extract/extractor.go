// Package extract recovers the translated text from the target page.
//
// The page's DOM offers no stable automation hooks, so extraction degrades
// through an ordered chain of heuristics instead of failing hard. Each tier
// trades precision for robustness; a tier that finds nothing (or errors
// internally) yields to the next one, and an exhausted chain yields the
// empty string, which is a valid outcome.
package extract

import (
	"regexp"
	"strings"

	"stv/internal/browser"
)

// The Sinhala script occupies the closed Unicode range U+0D80-U+0DFF.
// Both boundaries matter: narrowing the range changes extraction results.
var (
	scriptPattern = regexp.MustCompile(`[\x{0D80}-\x{0DFF}]+`)
	// The whole-body pattern additionally tolerates interior whitespace,
	// since body text flattens adjacent nodes together.
	bodyPattern = regexp.MustCompile(`[\x{0D80}-\x{0DFF}][\x{0D80}-\x{0DFF}\s]*`)
)

// textControlSelector matches text-input-like controls for the positional
// fallback tier.
const textControlSelector = `textarea, input[type="text"], input:not([type])`

// result is the tagged outcome of a single tier: either some text was found
// or the tier yields to the next one.
type result struct {
	text  string
	found bool
}

func foundText(text string) result {
	text = strings.TrimSpace(text)
	if text == "" {
		return result{}
	}
	return result{text: text, found: true}
}

// Extractor returns the best-effort current translated text of a page.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the current translated text, or "" when no tier finds a
// signal. It never returns an error: page failures count as a miss for the
// tier that hit them.
func (e *Extractor) Extract(p browser.Page) string {
	tiers := []func(browser.Page) result{
		e.scriptScan,
		e.secondControl,
		e.bodyScan,
	}
	for _, tier := range tiers {
		if r := tier(p); r.found {
			return r.text
		}
	}
	return ""
}

// scriptScan takes the last rendered element whose text contains Sinhala
// script. Last, because the output region renders after the input region in
// document order and page chrome may also carry Sinhala text.
func (e *Extractor) scriptScan(p browser.Page) result {
	texts, err := p.TextsMatching(scriptPattern)
	if err != nil || len(texts) == 0 {
		return result{}
	}
	return foundText(texts[len(texts)-1])
}

// secondControl assumes a fixed two-control layout: input first, output
// second. This is a deliberately fragile last-resort positional heuristic
// and must not be strengthened silently.
func (e *Extractor) secondControl(p browser.Page) result {
	values, err := p.ControlValues(textControlSelector)
	if err != nil || len(values) < 2 {
		return result{}
	}
	return foundText(values[1])
}

// bodyScan applies the Sinhala pattern to the whole body text. Least
// precise: it may pick up non-output Sinhala text elsewhere on the page.
func (e *Extractor) bodyScan(p browser.Page) result {
	body, err := p.BodyText()
	if err != nil {
		return result{}
	}
	return foundText(bodyPattern.FindString(body))
}
