package domain

import (
	"testing"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileWithHits builds a record with found lines of which hit were executed.
func fileWithHits(path m.Path, hit, found int) m.FileRecord {
	lines := make([]m.Line, 0, found)
	for i := 1; i <= found; i++ {
		hits := 0
		if i <= hit {
			hits = 1
		}

		lines = append(lines, m.Line{Number: i, Hits: hits})
	}

	return m.FileRecord{Path: path, Lines: lines}
}

func reportOf(files ...m.FileRecord) m.CoverageReport {
	return m.CoverageReport{Files: files}
}

func TestTotals(t *testing.T) {
	totals := Totals(reportOf(fileWithHits("a.js", 8, 10), fileWithHits("b.js", 5, 5), fileWithHits("c.js", 0, 0)))
	assert.Equal(t, m.Totals{Hit: 13, Found: 15}, totals)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name   string
		report m.CoverageReport
		want   float64
	}{
		{"empty report is 100", reportOf(), 100.0},
		{"only empty files is 100", reportOf(fileWithHits("a.js", 0, 0)), 100.0},
		{"single file", reportOf(fileWithHits("a.js", 8, 10)), 80.0},
		{"nothing hit", reportOf(fileWithHits("a.js", 0, 4)), 0.0},
		{"weighted by lines", reportOf(fileWithHits("a.js", 1, 4), fileWithHits("b.js", 3, 4)), 50.0},
		{"empty files add nothing", reportOf(fileWithHits("a.js", 3, 4), fileWithHits("b.js", 0, 0)), 75.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentage(tt.report), 1e-9)
		})
	}
}

func TestPercentage_IsNotRounded(t *testing.T) {
	got := Percentage(reportOf(fileWithHits("a.js", 1, 3)))
	assert.InDelta(t, 100.0/3.0, got, 1e-12)
	assert.NotEqual(t, 33.33, got)
}

func TestPasses(t *testing.T) {
	twelve := reportOf(fileWithHits("a.js", 12, 100))
	almostEighty := reportOf(fileWithHits("a.js", 7999, 10000))
	eighty := reportOf(fileWithHits("a.js", 8000, 10000))

	tests := []struct {
		name    string
		report  m.CoverageReport
		minimum float64
		want    bool
	}{
		{"zero minimum always passes", twelve, 0, true},
		{"zero minimum passes without lines hit", reportOf(fileWithHits("a.js", 0, 10)), 0, true},
		{"just below minimum fails", almostEighty, 80, false},
		{"exact minimum passes", eighty, 80, true},
		{"above minimum passes", eighty, 79.5, true},
		{"empty report passes any minimum", reportOf(), 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Passes(tt.report, tt.minimum))
		})
	}
}
