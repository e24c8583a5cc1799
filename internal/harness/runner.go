package harness

import (
	"fmt"
	"time"

	"stv/internal/browser"
	"stv/internal/domain"
	"stv/internal/report"
	"stv/internal/ui"
	"stv/internal/verdict"
)

// Runner executes test cases strictly sequentially, one fresh page per
// case, with zero retries. An infrastructure failure (navigation, control
// not found, page crash) aborts only that case: it is recorded as a failed
// verdict and the run continues.
type Runner struct {
	targetURL  string
	factory    browser.Factory
	driver     *Driver
	monitor    *Monitor
	classifier *verdict.Classifier
	shots      *report.Screenshots
	progress   *ui.ProgressBar
}

// NewRunner creates a new Runner.
func NewRunner(
	targetURL string,
	factory browser.Factory,
	driver *Driver,
	monitor *Monitor,
	classifier *verdict.Classifier,
	shots *report.Screenshots,
) *Runner {
	return &Runner{
		targetURL:  targetURL,
		factory:    factory,
		driver:     driver,
		monitor:    monitor,
		classifier: classifier,
		shots:      shots,
	}
}

// SetProgress sets the progress bar for the run.
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Execute runs all cases in order, then the optional realtime scenario.
// Exactly one verdict is appended to the summary per case, after that case
// completes. Returns the run duration and, when the realtime scenario ran,
// what the monitor observed.
func (r *Runner) Execute(cases []domain.TestCase, realtime *domain.TestCase, summary *domain.RunSummary) (time.Duration, *domain.RealtimeResult) {
	startTime := time.Now()
	for _, tc := range cases {
		summary.Record(r.runCase(tc, summary))
		r.tick(summary)
	}

	var rt *domain.RealtimeResult
	if realtime != nil {
		res, v := r.runRealtime(*realtime, summary)
		summary.Record(v)
		rt = &res
		r.tick(summary)
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return time.Since(startTime), rt
}

func (r *Runner) tick(summary *domain.RunSummary) {
	if r.progress != nil {
		passed, failed := summary.Counts()
		r.progress.Update(passed, failed)
	}
}

// runCase drives one case on a fresh page and classifies the result.
func (r *Runner) runCase(tc domain.TestCase, summary *domain.RunSummary) domain.Verdict {
	actual, err := r.translateOnFreshPage(tc)
	if err != nil {
		summary.RecordFailure(domain.Failure{
			TestID:   tc.ID,
			Input:    tc.Input,
			Expected: tc.Expected,
			Negative: tc.IsNegative(),
			Message:  err.Error(),
		})
		return domain.Verdict{TestID: tc.ID, Negative: tc.IsNegative()}
	}

	v := r.classifier.Classify(tc, actual)
	if !v.Passed {
		summary.RecordFailure(domain.Failure{
			TestID:   tc.ID,
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   actual,
			Negative: tc.IsNegative(),
		})
	}
	return v
}

func (r *Runner) translateOnFreshPage(tc domain.TestCase) (string, error) {
	page, err := r.factory.NewPage()
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(r.targetURL); err != nil {
		return "", err
	}
	actual, err := r.driver.Translate(page, tc.Input)
	if err != nil {
		return "", err
	}
	// Screenshots are audit trail only; a capture failure never fails the
	// case.
	r.shots.Capture(page, tc.ID)
	return actual, nil
}

// runRealtime runs the dedicated UI-responsiveness scenario: it passes only
// if at least one incremental update was observed AND the final output
// matches the expectation.
func (r *Runner) runRealtime(tc domain.TestCase, summary *domain.RunSummary) (domain.RealtimeResult, domain.Verdict) {
	res, err := r.monitorOnFreshPage(tc)
	if err != nil {
		summary.RecordFailure(domain.Failure{
			TestID:   tc.ID,
			Input:    tc.Input,
			Expected: tc.Expected,
			Message:  err.Error(),
		})
		return res, domain.Verdict{TestID: tc.ID}
	}

	v := r.classifier.Classify(tc, res.FinalOutput)
	if res.UpdateCount == 0 {
		v.Passed = false
	}
	if !v.Passed {
		summary.RecordFailure(domain.Failure{
			TestID:   tc.ID,
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   res.FinalOutput,
			Message:  fmt.Sprintf("incremental updates observed: %d", res.UpdateCount),
		})
	}
	return res, v
}

func (r *Runner) monitorOnFreshPage(tc domain.TestCase) (domain.RealtimeResult, error) {
	page, err := r.factory.NewPage()
	if err != nil {
		return domain.RealtimeResult{}, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(r.targetURL); err != nil {
		return domain.RealtimeResult{}, err
	}
	res, err := r.monitor.Run(page, tc.Input)
	if err != nil {
		return res, err
	}
	r.shots.Capture(page, tc.ID)
	return res, nil
}
