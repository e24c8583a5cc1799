package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"stv/internal/config"
	"stv/internal/storage"
	"stv/internal/ui"
)

// HistoryCommand handles the history command.
type HistoryCommand struct {
	config    *config.Config
	history   storage.History
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand.
func NewHistoryCommand(cfg *config.Config, history storage.History, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command.
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if !hc.config.HistoryEnabled() {
		return fmt.Errorf("history database not configured (set STV_DB_DATABASE)")
	}

	metas, err := hc.history.Recent(hc.config.Flags.HistoryLimit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(metas)
	return nil
}
