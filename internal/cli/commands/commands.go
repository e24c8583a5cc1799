package commands

import (
	"stv/internal/cases"
	"stv/internal/cli"
	"stv/internal/config"
	"stv/internal/extract"
	"stv/internal/storage"
	"stv/internal/ui"
	"stv/internal/verdict"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands.
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Realtime *RealtimeCommand
	Faills   *FaillsCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config) *Commands {
	filter := cases.NewFilter()
	extractor := extract.New()
	classifier := verdict.NewClassifier()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)
	history := storage.NewMySQLHistory(cfg)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, extractor, classifier, jsonStorage, formatter, failureViewer, history),
		List:     NewListCommand(cfg, filter, formatter),
		Realtime: NewRealtimeCommand(cfg, extractor, classifier, jsonStorage, formatter),
		Faills:   NewFaillsCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg, history, formatter),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the translation verification scenarios",
		Long:    "Drive the target translator page through every scenario sequentially and report verdicts",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter scenarios by ID pattern (supports wildcards, e.g. 'positive/*' or '*empty*')")
	runCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Run the browser with a visible window")
	runCmd.Flags().BoolVar(&flags.Poll, "poll", false, "Poll until output stabilizes instead of a fixed settle wait")
	runCmd.Flags().IntVar(&flags.SettleMS, "settle-ms", 0, "Override the translation settle window in milliseconds")
	runCmd.Flags().BoolVar(&flags.NoScreenshots, "no-screenshots", false, "Skip per-case screenshot capture")
	runCmd.Flags().BoolVar(&flags.NoRealtime, "no-realtime", false, "Skip the realtime typing scenario")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the verification scenarios",
		Long:    "Print the scenario catalog without executing it",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter scenarios by ID pattern (supports wildcards, e.g. 'positive/*' or '*empty*')")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show inputs and expected outputs")
	rootCmd.AddCommand(listCmd)

	// Realtime command
	realtimeCmd := &cobra.Command{
		Use:     "realtime",
		Short:   "Run only the realtime typing scenario",
		Long:    "Type the scenario input character by character and verify the page translates incrementally",
		RunE:    c.Realtime.Execute,
		PreRunE: applyFlags,
	}
	realtimeCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Run the browser with a visible window")
	realtimeCmd.Flags().BoolVar(&flags.NoScreenshots, "no-screenshots", false, "Skip screenshot capture")
	rootCmd.AddCommand(realtimeCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View failed cases interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List past verification runs",
		Long:    "Show run summaries recorded in the configured history database",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.HistoryLimit, "limit", "n", config.DefaultHistoryLimit, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
