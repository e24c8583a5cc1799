package commands

import (
	"fmt"

	"stv/internal/browser"
	"stv/internal/cases"
	"stv/internal/config"
	"stv/internal/domain"
	"stv/internal/extract"
	"stv/internal/harness"
	"stv/internal/report"
	"stv/internal/storage"
	"stv/internal/ui"
	"stv/internal/verdict"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command.
type RunCommand struct {
	config     *config.Config
	filter     *cases.Filter
	extractor  *extract.Extractor
	classifier *verdict.Classifier
	storage    storage.Storage
	formatter  *ui.Formatter
	viewer     *ui.FailureViewer
	history    storage.History
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	cfg *config.Config,
	filter *cases.Filter,
	extractor *extract.Extractor,
	classifier *verdict.Classifier,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
	history storage.History,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		filter:     filter,
		extractor:  extractor,
		classifier: classifier,
		storage:    st,
		formatter:  formatter,
		viewer:     viewer,
		history:    history,
	}
}

// Execute runs the command.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	selected := rc.filter.FilterByID(cases.Catalog(), rc.config.Flags.Filter)

	// The realtime scenario is subject to the same ID filter.
	var realtime *domain.TestCase
	if !rc.config.Flags.NoRealtime {
		if rt := rc.filter.FilterByID([]domain.TestCase{cases.Realtime()}, rc.config.Flags.Filter); len(rt) == 1 {
			realtime = &rt[0]
		}
	}

	total := len(selected)
	if realtime != nil {
		total++
	}
	if total == 0 {
		color.Yellow("No scenarios to execute")
		return nil
	}

	br, err := browser.Launch(browser.Options{
		Headed:            rc.config.Flags.Headed,
		NavigationTimeout: rc.config.NavigationTimeout,
	})
	if err != nil {
		return err
	}
	defer br.Close()

	runner := buildRunner(rc.config, br, rc.extractor, rc.classifier)

	progressBar := ui.NewProgressBar(total)
	runner.SetProgress(progressBar)

	summary := domain.NewRunSummary()
	duration, rtResult := runner.Execute(selected, realtime, summary)

	// Per-case diagnostics after the bar, in execution order.
	fmt.Println()
	byID := caseIndex(selected, realtime)
	for _, v := range summary.Verdicts() {
		tc := byID[v.TestID]
		if realtime != nil && v.TestID == realtime.ID && rtResult != nil {
			rc.formatter.PrintRealtime(tc, *rtResult, v)
		} else {
			rc.formatter.PrintCaseDiagnostics(tc, v)
		}
	}

	rep := summary.Finalize(rc.config.TargetURL, duration)
	if err := rc.storage.Save(rep); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}
	if rc.config.HistoryEnabled() {
		if err := rc.history.Record(rep.Meta); err != nil {
			color.Yellow("history not recorded: %v", err)
		}
	}

	rc.formatter.PrintSummary(rep)

	if rc.config.Flags.OpenFaills && rep.Meta.FailedCases > 0 {
		return rc.viewer.View(rep)
	}
	return nil
}

// buildRunner assembles the sequential runner for one browser session.
func buildRunner(cfg *config.Config, factory browser.Factory, extractor *extract.Extractor, classifier *verdict.Classifier) *harness.Runner {
	var settler harness.Settler = harness.FixedDelay{Delay: cfg.TranslateSettle}
	if cfg.Flags.Poll {
		settler = harness.PollUntilStable{Interval: cfg.PollInterval, Max: cfg.TranslateSettle}
	}
	driver := harness.NewDriver(cfg.InputSelector, cfg.ClearSettle, settler, extractor)
	monitor := harness.NewMonitor(cfg.InputSelector, cfg.KeyDelay, cfg.SampleSettle, cfg.FinalSettle, extractor)
	shots := report.NewScreenshots(cfg.GetScreenshotDir(), !cfg.Flags.NoScreenshots)
	return harness.NewRunner(cfg.TargetURL, factory, driver, monitor, classifier, shots)
}

func caseIndex(selected []domain.TestCase, realtime *domain.TestCase) map[string]domain.TestCase {
	byID := make(map[string]domain.TestCase, len(selected)+1)
	for _, tc := range selected {
		byID[tc.ID] = tc
	}
	if realtime != nil {
		byID[realtime.ID] = *realtime
	}
	return byID
}
