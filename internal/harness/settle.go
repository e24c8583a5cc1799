package harness

import (
	"time"

	"stv/internal/browser"
)

// Settler waits out the target page's asynchronous translation pipeline and
// returns a sample of the output. The page emits no completion event, so
// both strategies approximate one.
type Settler interface {
	Settle(p browser.Page, sample func() string) string
}

// FixedDelay waits a fixed duration, then samples once. This mirrors the
// target's lack of observable completion: the wait over-provisions and is a
// known source of flakiness.
type FixedDelay struct {
	Delay time.Duration
}

// Settle waits, then samples.
func (s FixedDelay) Settle(p browser.Page, sample func() string) string {
	p.Wait(s.Delay)
	return sample()
}

// PollUntilStable samples repeatedly until two consecutive non-empty samples
// match, bounded by Max. An output that never appears waits out the full
// window and returns the last sample.
type PollUntilStable struct {
	Interval time.Duration
	Max      time.Duration
}

// Settle polls for a stable output.
func (s PollUntilStable) Settle(p browser.Page, sample func() string) string {
	previous := sample()
	for waited := time.Duration(0); waited < s.Max; waited += s.Interval {
		p.Wait(s.Interval)
		current := sample()
		if current != "" && current == previous {
			return current
		}
		previous = current
	}
	return previous
}
