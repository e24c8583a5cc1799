package harness

import (
	"time"

	"stv/internal/browser"
	"stv/internal/domain"
	"stv/internal/extract"
)

// Monitor drives the input control character by character to verify the
// page translates incrementally as the user types, not only on submit.
type Monitor struct {
	selector   string
	keyDelay   time.Duration
	sampleWait time.Duration
	finalWait  time.Duration
	extractor  *extract.Extractor
}

// NewMonitor creates a new Monitor for the given input control selector.
func NewMonitor(selector string, keyDelay, sampleWait, finalWait time.Duration, extractor *extract.Extractor) *Monitor {
	return &Monitor{
		selector:   selector,
		keyDelay:   keyDelay,
		sampleWait: sampleWait,
		finalWait:  finalWait,
		extractor:  extractor,
	}
}

// Run clears the control, then appends input one keystroke at a time,
// sampling the output after each. A sample that is non-empty and differs
// from the previous one counts as an incremental update. A final longer
// settle precedes the last sample.
func (m *Monitor) Run(p browser.Page, input string) (domain.RealtimeResult, error) {
	var res domain.RealtimeResult
	if err := p.Clear(m.selector); err != nil {
		return res, err
	}
	previous := ""
	for _, r := range input {
		if err := p.TypeSequential(m.selector, string(r), m.keyDelay); err != nil {
			return res, err
		}
		p.Wait(m.sampleWait)
		output := m.extractor.Extract(p)
		if output != previous && output != "" {
			res.UpdateCount++
			previous = output
		}
	}
	p.Wait(m.finalWait)
	res.FinalOutput = m.extractor.Extract(p)
	return res, nil
}
