package domain

// Verdict is the outcome of executing one test case.
type Verdict struct {
	TestID   string `json:"test_id"`
	Actual   string `json:"actual"`
	Matched  bool   `json:"matched"`
	Passed   bool   `json:"passed"`
	Negative bool   `json:"negative"`
}

// RealtimeResult captures what the realtime monitor observed while typing a
// case character by character.
type RealtimeResult struct {
	UpdateCount int    `json:"update_count"`
	FinalOutput string `json:"final_output"`
}
