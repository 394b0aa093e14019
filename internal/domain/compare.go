package domain

import (
	"fmt"
	"log/slog"
	"sort"

	"covdelta.dev/pkg/covdelta/internal/controller"
	m "covdelta.dev/pkg/covdelta/internal/model"
)

// Compare matches the files of current against baseline and computes
// per-file and aggregate deltas. A nil baseline means no baseline is
// available. Neither report is modified.
//
// Paths are shortened by opts.Prefix before matching. Files only present in
// the baseline are listed in Removed and never appear as rows.
func Compare(current m.CoverageReport, baseline *m.CoverageReport, opts m.Options) m.Comparison {
	decimals := opts.Decimals()
	currentOrder, currentFiles := indexByPath(current, opts.Prefix)

	comparison := m.Comparison{
		Options:       opts,
		Rows:          make([]m.CoverageDelta, 0, len(currentOrder)),
		HasBaseline:   baseline != nil,
		CurrentTotals: Totals(current),
	}

	var baseFiles map[m.Path]m.FileRecord

	if baseline != nil {
		var baseOrder []m.Path

		baseOrder, baseFiles = indexByPath(*baseline, opts.Prefix)
		comparison.BaseTotals = Totals(*baseline)

		for _, path := range baseOrder {
			if _, ok := currentFiles[path]; !ok {
				comparison.Removed = append(comparison.Removed, path)
			}
		}

		sort.Slice(comparison.Removed, func(i, j int) bool {
			return comparison.Removed[i] < comparison.Removed[j]
		})
	}

	for _, path := range currentOrder {
		row := m.CoverageDelta{
			Path:           path,
			Current:        currentFiles[path].Percentage(),
			Classification: m.New,
		}

		if base, ok := baseFiles[path]; ok {
			applyBaseline(&row, base.Percentage(), decimals)
		}

		comparison.Rows = append(comparison.Rows, row)
	}

	sort.SliceStable(comparison.Rows, func(i, j int) bool {
		return comparison.Rows[i].Path < comparison.Rows[j].Path
	})

	comparison.Total = m.CoverageDelta{
		Current:        Percentage(current),
		Classification: m.New,
	}

	if baseline != nil {
		applyBaseline(&comparison.Total, Percentage(*baseline), decimals)
	}

	slog.Debug("compared coverage reports",
		"files", len(comparison.Rows),
		"removed", len(comparison.Removed),
		"baseline", comparison.HasBaseline,
		"total", comparison.Total.Current,
	)

	return comparison
}

// Diff compares the reports and renders the comparison as report text.
func Diff(current m.CoverageReport, baseline *m.CoverageReport, opts m.Options, renderer controller.Renderer) (string, error) {
	body, err := renderer.Render(Compare(current, baseline, opts))
	if err != nil {
		return "", fmt.Errorf("render comparison: %w", err)
	}

	return body, nil
}

func applyBaseline(row *m.CoverageDelta, basePercentage float64, decimals int) {
	delta := m.Round(row.Current-basePercentage, decimals)

	row.Baseline = &basePercentage
	row.Delta = &delta
	row.Classification = classify(delta)
}

func classify(delta float64) m.Classification {
	switch {
	case delta > 0:
		return m.Improved
	case delta < 0:
		return m.Regressed
	default:
		return m.Unchanged
	}
}

// indexByPath strips prefix from every path and returns the paths in report
// order with a lookup map. The first record wins when two paths collapse to
// the same shortened path.
func indexByPath(report m.CoverageReport, prefix string) ([]m.Path, map[m.Path]m.FileRecord) {
	order := make([]m.Path, 0, len(report.Files))
	files := make(map[m.Path]m.FileRecord, len(report.Files))

	for _, file := range report.Files {
		path := file.Path.TrimPrefix(prefix)
		if _, ok := files[path]; ok {
			slog.Warn("duplicate path after prefix stripping", "path", file.Path, "prefix", prefix)
			continue
		}

		order = append(order, path)
		files[path] = file
	}

	return order, files
}
