package commands

import (
	"fmt"

	"stv/internal/browser"
	"stv/internal/cases"
	"stv/internal/config"
	"stv/internal/domain"
	"stv/internal/extract"
	"stv/internal/storage"
	"stv/internal/ui"
	"stv/internal/verdict"

	"github.com/spf13/cobra"
)

// RealtimeCommand handles the realtime command.
type RealtimeCommand struct {
	config     *config.Config
	extractor  *extract.Extractor
	classifier *verdict.Classifier
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewRealtimeCommand creates a new RealtimeCommand.
func NewRealtimeCommand(
	cfg *config.Config,
	extractor *extract.Extractor,
	classifier *verdict.Classifier,
	st storage.Storage,
	formatter *ui.Formatter,
) *RealtimeCommand {
	return &RealtimeCommand{
		config:     cfg,
		extractor:  extractor,
		classifier: classifier,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command.
func (rc *RealtimeCommand) Execute(cmd *cobra.Command, args []string) error {
	br, err := browser.Launch(browser.Options{
		Headed:            rc.config.Flags.Headed,
		NavigationTimeout: rc.config.NavigationTimeout,
	})
	if err != nil {
		return err
	}
	defer br.Close()

	runner := buildRunner(rc.config, br, rc.extractor, rc.classifier)

	tc := cases.Realtime()
	summary := domain.NewRunSummary()
	duration, rtResult := runner.Execute(nil, &tc, summary)

	verdicts := summary.Verdicts()
	if len(verdicts) == 1 && rtResult != nil {
		rc.formatter.PrintRealtime(tc, *rtResult, verdicts[0])
	}

	rep := summary.Finalize(rc.config.TargetURL, duration)
	if err := rc.storage.Save(rep); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}
	rc.formatter.PrintSummary(rep)
	return nil
}
