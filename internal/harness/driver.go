package harness

import (
	"time"

	"stv/internal/browser"
	"stv/internal/extract"
)

// Driver feeds one input through the page's translation pipeline and reads
// back the output.
type Driver struct {
	selector  string
	clearWait time.Duration
	settler   Settler
	extractor *extract.Extractor
}

// NewDriver creates a new Driver for the given input control selector.
func NewDriver(selector string, clearWait time.Duration, settler Settler, extractor *extract.Extractor) *Driver {
	return &Driver{
		selector:  selector,
		clearWait: clearWait,
		settler:   settler,
		extractor: extractor,
	}
}

// Translate clears the input control, fills it atomically with input, waits
// for the page to settle and returns one extraction sample. Page errors
// propagate so the runner can fail the case; extraction itself never fails.
func (d *Driver) Translate(p browser.Page, input string) (string, error) {
	if err := p.Clear(d.selector); err != nil {
		return "", err
	}
	// Do not race the page's own debounce/reset after clearing.
	p.Wait(d.clearWait)
	if err := p.Fill(d.selector, input); err != nil {
		return "", err
	}
	return d.settler.Settle(p, func() string { return d.extractor.Extract(p) }), nil
}
