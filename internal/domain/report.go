package domain

// ReportMeta contains aggregate statistics about a verification run.
type ReportMeta struct {
	Target          string   `json:"target"`
	TotalCases      int      `json:"total_cases"`
	PassedCases     int      `json:"passed_cases"`
	FailedCases     int      `json:"failed_cases"`
	PassRate        float64  `json:"pass_rate"`
	FailedIDs       []string `json:"failed_ids,omitempty"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Timestamp       string   `json:"timestamp"`
}

// Failure holds the diagnostic payload for one failed case.
type Failure struct {
	TestID   string `json:"test_id"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Negative bool   `json:"negative"`
	Message  string `json:"message,omitempty"`
	Resolved bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

// Report is the complete persisted output of a verification run.
type Report struct {
	Meta     ReportMeta `json:"meta"`
	Verdicts []Verdict  `json:"verdicts"`
	Failures []Failure  `json:"failures"`
}
