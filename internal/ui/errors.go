package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"stv/internal/config"
	"stv/internal/domain"
	"stv/internal/storage"
)

// FailureViewer displays failed cases in an interactive TUI.
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the report's failures in an interactive TUI. Pressing R
// toggles a failure's resolved marker, persisted back to the report file.
func (fv *FailureViewer) View(report *domain.Report) error {
	if len(report.Failures) == 0 {
		color.Green("✓ No failures found!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range report.Failures {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range report.Failures {
			report.Failures[i].Resolved = resolved[i]
		}
		return fv.storage.Save(report)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := report.Failures[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.TestID)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.TestID)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range report.Failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range report.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Cases (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(report.Failures), countUnresolved()))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(report.Failures) {
			failure := report.Failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(report.Failures) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failed case for display using tview color
// tags ([red], [cyan], etc.).
func (fv *FailureViewer) formatFailureDetails(failure domain.Failure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", failure.TestID)

	mode := "positive (must match exactly)"
	if failure.Negative {
		mode = "negative (must not match)"
	}
	fmt.Fprintf(&builder, "[cyan]Mode: %s[white]\n\n", mode)

	fmt.Fprintf(&builder, "[yellow]Input:[white]\n%q\n\n", failure.Input)
	fmt.Fprintf(&builder, "[yellow]Expected:[white]\n%q\n\n", failure.Expected)
	fmt.Fprintf(&builder, "[yellow]Actual:[white]\n%q\n\n", failure.Actual)

	if failure.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n", failure.Message)
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a failed case.
func (fv *FailureViewer) formatFailureStats(failure domain.Failure, number int) string {
	id := failure.TestID
	if id == "" {
		id = fmt.Sprintf("Case %d", number)
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]\n", id)
}
