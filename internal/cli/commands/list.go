package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"stv/internal/cases"
	"stv/internal/config"
	"stv/internal/ui"
)

// ListCommand handles the list command.
type ListCommand struct {
	config    *config.Config
	filter    *cases.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand.
func NewListCommand(cfg *config.Config, filter *cases.Filter, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog := append(cases.Catalog(), cases.Realtime())
	selected := lc.filter.FilterByID(catalog, lc.config.Flags.Filter)

	if len(selected) == 0 {
		color.Yellow("No scenarios found")
		return nil
	}

	lc.formatter.PrintCaseList(selected, lc.config.Flags.Verbose)
	return nil
}
