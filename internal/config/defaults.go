package config

import "time"

const (
	// DefaultTargetURL is the translator page verified by default.
	DefaultTargetURL = "https://www.easysinhalaunicode.com/"
	// DefaultInputSelector locates the Singlish entry control by its
	// placeholder text. The page exposes no stable automation hooks.
	DefaultInputSelector = `textarea[placeholder*="Singlish"]`
	// DefaultResultsDir is the directory for reports and screenshots.
	DefaultResultsDir = "results"
	// DefaultOutputJSONFile is the persisted run report file name.
	DefaultOutputJSONFile = "run-report.json"

	// DefaultClearSettle is the wait after clearing the input, so the
	// page's own debounce/reset logic is not raced.
	DefaultClearSettle = 500 * time.Millisecond
	// DefaultTranslateSettle is the fixed wait for the page's debounced
	// translation pipeline after an atomic fill. The page gives no
	// completion signal, so this over-provisions.
	DefaultTranslateSettle = 4 * time.Second
	// DefaultPollInterval is the sampling interval of the poll-until-stable
	// settle strategy.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultKeyDelay is the inter-keystroke delay of the realtime monitor,
	// mimicking human typing cadence.
	DefaultKeyDelay = 200 * time.Millisecond
	// DefaultSampleSettle is the wait before sampling output after each
	// monitored keystroke.
	DefaultSampleSettle = 500 * time.Millisecond
	// DefaultFinalSettle is the wait before the monitor's final sample.
	DefaultFinalSettle = 2 * time.Second

	// DefaultNavigationTimeout bounds page navigation.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultHistoryLimit is how many past runs the history command lists.
	DefaultHistoryLimit = 20
)
