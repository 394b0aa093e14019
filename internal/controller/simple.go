package controller

import (
	"bytes"
	"context"
	"fmt"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	paint func(class m.Classification, text string) string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, paint: plain}
}

func plain(_ m.Classification, text string) string {
	return text
}

// DisplaySkipped reports that no current coverage report was found.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("No coverage report found at '%s', exiting...\n", path)
}

// DisplayMissingBaseline reports that the baseline report was not found.
func (s *SimpleUI) DisplayMissingBaseline(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("No coverage report found at '%s', ignoring...\n", path)
}

// DisplayComparison prints a per-file table and the aggregate coverage.
func (s *SimpleUI) DisplayComparison(ctx context.Context, comparison m.Comparison) {
	if err := ctx.Err(); err != nil {
		return
	}

	decimals := comparison.Options.Decimals()

	if len(comparison.Rows) > 0 {
		s.printf("\n%s", s.renderConsoleTable(comparison, decimals))
	}

	total := formatPercent(comparison.Total.Current, decimals)
	if comparison.Total.Delta != nil {
		total += " " + s.paint(comparison.Total.Classification, formatDelta(comparison.Total, decimals))
	}

	s.printf("Total coverage: %s (%d/%d lines)\n", total, comparison.CurrentTotals.Hit, comparison.CurrentTotals.Found)

	if len(comparison.Removed) > 0 {
		s.printf("Files no longer reported: %d\n", len(comparison.Removed))
	}
}

func (s *SimpleUI) renderConsoleTable(comparison m.Comparison, decimals int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Coverage", "Change"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, row := range comparison.Rows {
		change := formatDelta(row, decimals)
		if !comparison.HasBaseline {
			change = "-"
		}

		table.Append([]string{string(row.Path), formatPercent(row.Current, decimals), change})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(comparison.Rows)),
		formatPercent(comparison.Total.Current, decimals),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayCheck prints the check title and conclusion.
func (s *SimpleUI) DisplayCheck(ctx context.Context, check m.Check) {
	if err := ctx.Err(); err != nil {
		return
	}

	class := m.Improved
	if check.Conclusion == m.ConclusionFailure {
		class = m.Regressed
	}

	s.printf("%s: %s\n", check.Title, s.paint(class, string(check.Conclusion)))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
