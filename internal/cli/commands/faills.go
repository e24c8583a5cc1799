package commands

import (
	"github.com/spf13/cobra"
	"stv/internal/config"
	"stv/internal/storage"
	"stv/internal/ui"
)

// FaillsCommand handles the faills command.
type FaillsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFaillsCommand creates a new FaillsCommand.
func NewFaillsCommand(cfg *config.Config, st storage.Storage, viewer *ui.FailureViewer) *FaillsCommand {
	return &FaillsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command.
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(report)
}
