package controller

import (
	"strconv"

	m "covdelta.dev/pkg/covdelta/internal/model"
)

const (
	improvedMarker  = "▴"
	regressedMarker = "▾"
	unchangedMarker = "="
	newMarker       = "🆕 new"
)

// formatPercent prints a percentage with the given decimals and a % suffix.
func formatPercent(value float64, decimals int) string {
	return strconv.FormatFloat(m.Round(value, decimals), 'f', decimals, 64) + "%"
}

// formatSigned prints a delta with an explicit sign.
func formatSigned(value float64, decimals int) string {
	s := formatPercent(value, decimals)
	if m.Round(value, decimals) > 0 {
		return "+" + s
	}

	return s
}

// formatDelta renders the delta cell of a row.
func formatDelta(row m.CoverageDelta, decimals int) string {
	if row.Delta == nil {
		return newMarker
	}

	switch row.Classification {
	case m.Improved:
		return improvedMarker + " " + formatSigned(*row.Delta, decimals)
	case m.Regressed:
		return regressedMarker + " " + formatSigned(*row.Delta, decimals)
	default:
		return unchangedMarker + " " + formatSigned(*row.Delta, decimals)
	}
}
