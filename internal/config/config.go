package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness.
type Config struct {
	// Target settings
	TargetURL     string
	InputSelector string

	// Output settings
	ResultsDir     string
	OutputJSONFile string

	// Timing settings (fixed waits; the target gives no completion events)
	ClearSettle       time.Duration
	TranslateSettle   time.Duration
	PollInterval      time.Duration
	KeyDelay          time.Duration
	SampleSettle      time.Duration
	FinalSettle       time.Duration
	NavigationTimeout time.Duration

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	Filter        string
	Headed        bool
	Poll          bool
	SettleMS      int
	NoScreenshots bool
	NoRealtime    bool
	OpenFaills    bool
	Verbose       bool
	HistoryLimit  int
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		TargetURL:         DefaultTargetURL,
		InputSelector:     DefaultInputSelector,
		ResultsDir:        DefaultResultsDir,
		OutputJSONFile:    DefaultOutputJSONFile,
		ClearSettle:       DefaultClearSettle,
		TranslateSettle:   DefaultTranslateSettle,
		PollInterval:      DefaultPollInterval,
		KeyDelay:          DefaultKeyDelay,
		SampleSettle:      DefaultSampleSettle,
		FinalSettle:       DefaultFinalSettle,
		NavigationTimeout: DefaultNavigationTimeout,
		Flags:             Flags{HistoryLimit: DefaultHistoryLimit},
	}
}

// Load creates a config from defaults, .env file and environment.
func Load() *Config {
	// .env file might not exist, that's okay - use environment variables
	if err := godotenv.Load(); err != nil {
		_ = err
	}

	cfg := New()
	if v := os.Getenv("STV_TARGET_URL"); v != "" {
		cfg.TargetURL = v
	}
	if v := os.Getenv("STV_INPUT_SELECTOR"); v != "" {
		cfg.InputSelector = v
	}
	if v := os.Getenv("STV_RESULTS_DIR"); v != "" {
		cfg.ResultsDir = v
	}
	if ms, ok := envMillis("STV_TRANSLATE_SETTLE_MS"); ok {
		cfg.TranslateSettle = ms
	}
	if ms, ok := envMillis("STV_CLEAR_SETTLE_MS"); ok {
		cfg.ClearSettle = ms
	}
	if ms, ok := envMillis("STV_KEY_DELAY_MS"); ok {
		cfg.KeyDelay = ms
	}
	return cfg
}

func envMillis(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// ApplyFlags applies parsed command-line flag overrides.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.SettleMS > 0 {
		c.TranslateSettle = time.Duration(flags.SettleMS) * time.Millisecond
	}
	if flags.HistoryLimit <= 0 {
		c.Flags.HistoryLimit = DefaultHistoryLimit
	}
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and faills always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ResultsDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetScreenshotDir returns the directory for per-case screenshots.
func (c *Config) GetScreenshotDir() string {
	return filepath.Join(c.ResultsDir, "screenshots")
}

// HistoryEnabled reports whether a run-history database is configured.
func (c *Config) HistoryEnabled() bool {
	return os.Getenv("STV_DB_DATABASE") != ""
}

// DatabaseDSN builds the MySQL DSN for the run-history store from the
// environment, with the same defaults for host and port as local setups.
func (c *Config) DatabaseDSN() string {
	host := os.Getenv("STV_DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("STV_DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("STV_DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("STV_DB_PASSWORD")
	database := os.Getenv("STV_DB_DATABASE")
	return user + ":" + password + "@tcp(" + host + ":" + port + ")/" + database + "?parseTime=true"
}
