package browser

import (
	"regexp"
	"time"
)

// Page is the cooperative browser-page session the harness drives. The core
// never depends on page internals beyond these primitives; each call blocks
// until the browser command round-trip completes.
type Page interface {
	// Navigate loads the given URL and waits for the load event.
	Navigate(url string) error
	// Clear empties the control matched by selector.
	Clear(selector string) error
	// Fill sets the control's content in one atomic operation.
	Fill(selector, value string) error
	// TypeSequential types text into the control one key at a time with the
	// given inter-keystroke delay.
	TypeSequential(selector, text string, delay time.Duration) error
	// Value returns the current value of the control matched by selector.
	Value(selector string) (string, error)
	// TextsMatching returns the rendered text of all elements whose text
	// matches pattern, in document order.
	TextsMatching(pattern *regexp.Regexp) ([]string, error)
	// ControlValues returns the current values of all controls matched by
	// selector, in document order.
	ControlValues(selector string) ([]string, error)
	// BodyText returns the full text content of the page body.
	BodyText() (string, error)
	// Screenshot captures a full-page screenshot to path.
	Screenshot(path string) error
	// Wait suspends for the given duration (settle delays).
	Wait(d time.Duration)
	// Close releases the page.
	Close() error
}

// Factory opens fresh pages. The runner uses one page per test case.
type Factory interface {
	NewPage() (Page, error)
}
