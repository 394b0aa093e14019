package controller

import (
	"bytes"
	"strings"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/olekukonko/tablewriter"
)

const noFilesLine = "_No files reported._"

// MarkdownRenderer renders a comparison as a Markdown summary suitable for
// check runs and step summaries.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a new MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements Renderer. Rows keep the order of the comparison.
func (r *MarkdownRenderer) Render(comparison m.Comparison) (string, error) {
	decimals := comparison.Options.Decimals()
	sections := []string{renderHeader(comparison.Options)}

	if details := renderDetails(comparison.Options); details != "" {
		sections = append(sections, details)
	}

	sections = append(sections, renderTotal(comparison, decimals))

	if len(comparison.Rows) == 0 {
		sections = append(sections, noFilesLine)
	} else {
		sections = append(sections, strings.TrimRight(renderFileTable(comparison, decimals), "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}

func renderHeader(opts m.Options) string {
	switch {
	case opts.Head != "" && opts.Base != "":
		return "Coverage after merging **" + opts.Head + "** into **" + opts.Base + "**"
	case opts.Head != "":
		return "Coverage for **" + opts.Head + "**"
	default:
		return "Coverage report"
	}
}

func renderDetails(opts m.Options) string {
	var lines []string

	if opts.Repository != "" {
		lines = append(lines, "Repository: "+opts.Repository)
	}

	if opts.Commit != "" {
		lines = append(lines, "Commit: "+opts.Commit)
	}

	return strings.Join(lines, "  \n")
}

func renderTotal(comparison m.Comparison, decimals int) string {
	line := "Total coverage: **" + formatPercent(comparison.Total.Current, decimals) + "**"
	if comparison.Total.Delta != nil {
		line += " (" + formatDelta(comparison.Total, decimals) + ")"
	}

	return line
}

func renderFileTable(comparison m.Comparison, decimals int) string {
	var tableBuffer bytes.Buffer

	header := []string{"File", "Coverage"}
	alignment := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT}

	if comparison.HasBaseline {
		header = append(header, "Δ")
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetColumnAlignment(alignment)

	for _, row := range comparison.Rows {
		cells := []string{markdownPath(row.Path), formatPercent(row.Current, decimals)}
		if comparison.HasBaseline {
			cells = append(cells, formatDelta(row, decimals))
		}

		table.Append(cells)
	}

	table.Render()

	return tableBuffer.String()
}

// markdownPath renders a path as a code span safe to place in a table cell.
func markdownPath(path m.Path) string {
	return "`" + strings.ReplaceAll(string(path), "|", `\|`) + "`"
}
