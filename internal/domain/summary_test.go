package domain

import (
	"testing"
	"time"
)

func TestRunSummary_Counts(t *testing.T) {
	s := NewRunSummary()
	s.Record(Verdict{TestID: "positive/a", Passed: true})
	s.Record(Verdict{TestID: "positive/b", Passed: false})
	s.Record(Verdict{TestID: "negative/c", Passed: true})
	s.Record(Verdict{TestID: "negative/d", Passed: false})

	passed, failed := s.Counts()
	if passed != 2 || failed != 2 {
		t.Errorf("expected 2 passed and 2 failed, got %d and %d", passed, failed)
	}

	failedIDs := s.FailedIDs()
	if len(failedIDs) != 2 || failedIDs[0] != "positive/b" || failedIDs[1] != "negative/d" {
		t.Errorf("expected failed IDs in execution order, got %v", failedIDs)
	}
	if len(s.Verdicts()) != 4 {
		t.Errorf("expected 4 verdicts, got %d", len(s.Verdicts()))
	}
}

func TestRunSummary_Finalize(t *testing.T) {
	s := NewRunSummary()
	s.Record(Verdict{TestID: "positive/a", Passed: true})
	s.Record(Verdict{TestID: "positive/b", Passed: true})
	s.Record(Verdict{TestID: "positive/c", Passed: false})
	s.Record(Verdict{TestID: "positive/d", Passed: false})
	s.RecordFailure(Failure{TestID: "positive/c", Message: "wrong output"})

	report := s.Finalize("https://translator.example/", 90*time.Second)

	if report.Meta.TotalCases != 4 {
		t.Errorf("expected 4 total cases, got %d", report.Meta.TotalCases)
	}
	if report.Meta.PassRate != 50.0 {
		t.Errorf("expected 50%% pass rate, got %v", report.Meta.PassRate)
	}
	if report.Meta.Target != "https://translator.example/" {
		t.Errorf("unexpected target %q", report.Meta.Target)
	}
	if report.Meta.Duration != "1m30s" {
		t.Errorf("unexpected duration %q", report.Meta.Duration)
	}
	if report.Meta.DurationSeconds != 90 {
		t.Errorf("unexpected duration seconds %v", report.Meta.DurationSeconds)
	}
	if len(report.Meta.FailedIDs) != 2 {
		t.Errorf("expected 2 failed IDs, got %v", report.Meta.FailedIDs)
	}
	if len(report.Failures) != 1 || report.Failures[0].TestID != "positive/c" {
		t.Errorf("unexpected failures %v", report.Failures)
	}
	if _, err := time.Parse(time.RFC3339, report.Meta.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", report.Meta.Timestamp, err)
	}
}

func TestRunSummary_Finalize_EmptyRun(t *testing.T) {
	report := NewRunSummary().Finalize("https://translator.example/", 0)

	if report.Meta.TotalCases != 0 {
		t.Errorf("expected 0 total cases, got %d", report.Meta.TotalCases)
	}
	if report.Meta.PassRate != 0 {
		t.Errorf("expected 0%% pass rate on an empty run, got %v", report.Meta.PassRate)
	}
}

func TestTestCase_IsNegative(t *testing.T) {
	if (TestCase{Mode: Positive}).IsNegative() {
		t.Error("positive case reported as negative")
	}
	if !(TestCase{Mode: Negative}).IsNegative() {
		t.Error("negative case reported as positive")
	}
}
