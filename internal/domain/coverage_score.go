package domain

import (
	m "covdelta.dev/pkg/covdelta/internal/model"
)

// Totals sums found and hit lines across every file of the report.
func Totals(report m.CoverageReport) m.Totals {
	totals := m.Totals{}

	for _, file := range report.Files {
		totals.Found += file.LinesFound()
		totals.Hit += file.LinesHit()
	}

	return totals
}

// Percentage returns the aggregate line coverage of the report, unrounded.
// An empty report has nothing uncovered and scores 100.
func Percentage(report m.CoverageReport) float64 {
	totals := Totals(report)
	if totals.Found == 0 {
		return 100.0
	}

	return 100 * float64(totals.Hit) / float64(totals.Found)
}

// Passes reports whether the aggregate coverage satisfies minimum.
// A minimum of 0 means no threshold is configured and always passes.
func Passes(report m.CoverageReport, minimum float64) bool {
	if minimum == 0 {
		return true
	}

	return Percentage(report) >= minimum
}
