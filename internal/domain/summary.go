package domain

import "time"

// RunSummary accumulates verdicts across one sequential run. The runner
// appends after each case completes; there are no concurrent writers.
type RunSummary struct {
	verdicts  []Verdict
	failures  []Failure
	failedIDs []string
	passed    int
	failed    int
}

// NewRunSummary returns an empty accumulator for one run.
func NewRunSummary() *RunSummary {
	return &RunSummary{}
}

// Record adds one verdict to the summary. Every test case contributes
// exactly one verdict per execution.
func (s *RunSummary) Record(v Verdict) {
	s.verdicts = append(s.verdicts, v)
	if v.Passed {
		s.passed++
	} else {
		s.failed++
		s.failedIDs = append(s.failedIDs, v.TestID)
	}
}

// RecordFailure attaches diagnostic detail for a failed case (shown by the
// faills viewer and persisted in the JSON report).
func (s *RunSummary) RecordFailure(f Failure) {
	s.failures = append(s.failures, f)
}

// Verdicts returns the recorded verdicts in execution order.
func (s *RunSummary) Verdicts() []Verdict {
	return s.verdicts
}

// FailedIDs returns the IDs of failed cases in execution order.
func (s *RunSummary) FailedIDs() []string {
	return s.failedIDs
}

// Counts returns the number of passed and failed cases so far.
func (s *RunSummary) Counts() (passed, failed int) {
	return s.passed, s.failed
}

// Finalize produces the report for the completed run. Called once, at run
// end.
func (s *RunSummary) Finalize(target string, duration time.Duration) *Report {
	total := s.passed + s.failed
	rate := 0.0
	if total > 0 {
		rate = float64(s.passed) / float64(total) * 100
	}
	return &Report{
		Meta: ReportMeta{
			Target:          target,
			TotalCases:      total,
			PassedCases:     s.passed,
			FailedCases:     s.failed,
			PassRate:        rate,
			FailedIDs:       s.failedIDs,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Verdicts: s.verdicts,
		Failures: s.failures,
	}
}
