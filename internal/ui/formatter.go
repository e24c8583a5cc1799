package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"stv/internal/config"
	"stv/internal/domain"
)

// diagnosticLimit caps input/expected/actual strings in console output.
const diagnosticLimit = 60

// Formatter formats and displays run output.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays the aggregate statistics of a run.
func (f *Formatter) PrintSummary(report *domain.Report) {
	meta := report.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                 Translation Verification Summary              ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Target")
	color.White("%-27s │\n", truncate(meta.Target, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Pass Rate")
	rateStr := fmt.Sprintf("%.1f%%", meta.PassRate)
	color.White("%-27s │\n", rateStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", truncate(meta.Timestamp, 27))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 {
		color.Green("✓ All scenarios passed!")
	} else {
		color.Red("✗ %d scenario(s) failed", meta.FailedCases)
		fmt.Println()
		f.printFailedTree(meta.FailedIDs)
	}
}

// printFailedTree groups failing IDs by their scope prefix ("positive",
// "negative", "realtime") and prints them as a tree.
func (f *Formatter) printFailedTree(failedIDs []string) {
	groups := make(map[string][]string)
	var order []string
	for _, id := range failedIDs {
		scope, name := splitID(id)
		if _, seen := groups[scope]; !seen {
			order = append(order, scope)
		}
		groups[scope] = append(groups[scope], name)
	}
	sort.Strings(order)

	for i, scope := range order {
		isLastScope := i == len(order)-1
		if isLastScope {
			color.Cyan("└── %s", scope)
		} else {
			color.Cyan("├── %s", scope)
		}
		for j, name := range groups[scope] {
			isLastName := j == len(groups[scope])-1
			var prefix string
			switch {
			case isLastScope && isLastName:
				prefix = "    └── "
			case isLastScope:
				prefix = "    ├── "
			case isLastName:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			color.Red("%s%s", prefix, name)
		}
	}
}

// PrintCaseList prints the scenario catalog, optionally with inputs and
// expectations.
func (f *Formatter) PrintCaseList(cases []domain.TestCase, verbose bool) {
	color.Green("Found %d scenario(s):\n", len(cases))

	for i, tc := range cases {
		isLast := i == len(cases)-1
		marker := "├── "
		if isLast {
			marker = "└── "
		}
		mode := "positive"
		if tc.IsNegative() {
			mode = "negative"
		}
		color.Cyan("%s%s %s", marker, tc.ID, color.YellowString("[%s]", mode))

		if verbose {
			prefix := "│   "
			if isLast {
				prefix = "    "
			}
			fmt.Printf("%sinput:    %q\n", prefix, truncate(tc.Input, diagnosticLimit))
			fmt.Printf("%sexpected: %q\n", prefix, truncate(tc.Expected, diagnosticLimit))
		}
	}
}

// PrintCaseDiagnostics prints the per-case console diagnostics after a case
// completes.
func (f *Formatter) PrintCaseDiagnostics(tc domain.TestCase, v domain.Verdict) {
	status := color.GreenString("PASS")
	if !v.Passed {
		status = color.RedString("FAIL")
	}
	fmt.Printf("%s %s\n", status, tc.ID)
	fmt.Printf("     input:    %q\n", truncate(tc.Input, diagnosticLimit))
	fmt.Printf("     expected: %q\n", truncate(tc.Expected, diagnosticLimit))
	fmt.Printf("     actual:   %q\n", truncate(v.Actual, diagnosticLimit))
}

// PrintRealtime prints what the realtime monitor observed.
func (f *Formatter) PrintRealtime(tc domain.TestCase, res domain.RealtimeResult, v domain.Verdict) {
	f.PrintCaseDiagnostics(tc, v)
	if res.UpdateCount > 0 {
		color.Green("     incremental updates: %d", res.UpdateCount)
	} else {
		color.Red("     incremental updates: 0 (page did not update while typing)")
	}
}

// PrintHistory prints past run summaries, newest first.
func (f *Formatter) PrintHistory(metas []domain.ReportMeta) {
	if len(metas) == 0 {
		color.Yellow("No recorded runs")
		return
	}
	for _, m := range metas {
		status := color.GreenString("✓")
		if m.FailedCases > 0 {
			status = color.RedString("✗")
		}
		fmt.Printf("%s %s  %d/%d passed (%.1f%%)  %.2fs  %s\n",
			status, m.Timestamp, m.PassedCases, m.TotalCases, m.PassRate, m.DurationSeconds, m.Target)
	}
}

func splitID(id string) (scope, name string) {
	if idx := strings.Index(id, "/"); idx >= 0 {
		return id[:idx], id[idx+1:]
	}
	return id, id
}

// truncate shortens s to at most limit runes, marking the cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
