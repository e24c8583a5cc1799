package harness

import (
	"fmt"
	"testing"
	"time"
)

func TestFixedDelay_Settle(t *testing.T) {
	page := &scriptedPage{}
	sampleCalls := 0
	sample := func() string {
		sampleCalls++
		return "මම"
	}

	got := FixedDelay{Delay: 4 * time.Second}.Settle(page, sample)

	if got != "මම" {
		t.Errorf("expected %q, got %q", "මම", got)
	}
	if sampleCalls != 1 {
		t.Errorf("expected exactly one sample, got %d", sampleCalls)
	}
	if len(page.calls) != 1 || page.calls[0] != "wait:4s" {
		t.Errorf("expected a single 4s wait, got %v", page.calls)
	}
}

func TestPollUntilStable_ReturnsEarlyOnStableOutput(t *testing.T) {
	page := &scriptedPage{}
	outputs := []string{"", "මම", "මම", "මම ගෙදර"}
	sampleCalls := 0
	sample := func() string {
		out := outputs[sampleCalls]
		sampleCalls++
		return out
	}

	settler := PollUntilStable{Interval: 100 * time.Millisecond, Max: time.Second}
	got := settler.Settle(page, sample)

	if got != "මම" {
		t.Errorf("expected %q, got %q", "මම", got)
	}
	// One initial sample plus one per poll; the third sample matched the
	// second, so polling stopped after two intervals.
	if sampleCalls != 3 {
		t.Errorf("expected 3 samples, got %d", sampleCalls)
	}
	if len(page.calls) != 2 {
		t.Errorf("expected 2 waits, got %v", page.calls)
	}
}

func TestPollUntilStable_NeverStableWaitsOutTheWindow(t *testing.T) {
	page := &scriptedPage{}
	sampleCalls := 0
	sample := func() string {
		sampleCalls++
		return fmt.Sprintf("sample-%d", sampleCalls)
	}

	settler := PollUntilStable{Interval: 100 * time.Millisecond, Max: 500 * time.Millisecond}
	got := settler.Settle(page, sample)

	if got != "sample-6" {
		t.Errorf("expected the last sample, got %q", got)
	}
	if len(page.calls) != 5 {
		t.Errorf("expected 5 waits, got %v", page.calls)
	}
}

func TestPollUntilStable_EmptyOutputNeverReturnsEarly(t *testing.T) {
	page := &scriptedPage{}
	sample := func() string { return "" }

	settler := PollUntilStable{Interval: 100 * time.Millisecond, Max: 500 * time.Millisecond}
	got := settler.Settle(page, sample)

	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	// Consecutive empty samples are equal but must not short-circuit:
	// a negative case legitimately produces nothing.
	if len(page.calls) != 5 {
		t.Errorf("expected the full window of 5 waits, got %v", page.calls)
	}
}
