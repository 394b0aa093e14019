package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileRecord_Counters(t *testing.T) {
	file := FileRecord{
		Path:  "a.js",
		Lines: []Line{{Number: 1, Hits: 3}, {Number: 2, Hits: 0}, {Number: 4, Hits: 1}, {Number: 9, Hits: 0}},
	}

	assert.Equal(t, 4, file.LinesFound())
	assert.Equal(t, 2, file.LinesHit())
	assert.InDelta(t, 50.0, file.Percentage(), 1e-9)
}

func TestFileRecord_PercentageWithoutLines(t *testing.T) {
	assert.Equal(t, 100.0, FileRecord{Path: "empty.js"}.Percentage())
}

func TestFileRecord_Hits(t *testing.T) {
	file := FileRecord{Lines: []Line{{Number: 7, Hits: 2}}}

	hits, ok := file.Hits(7)
	assert.True(t, ok)
	assert.Equal(t, 2, hits)

	_, ok = file.Hits(8)
	assert.False(t, ok)
}

func TestCoverageReport_File(t *testing.T) {
	report := CoverageReport{Files: []FileRecord{{Path: "a.js"}, {Path: "b.js", Lines: []Line{{Number: 1}}}}}

	file, ok := report.File("b.js")
	assert.True(t, ok)
	assert.Equal(t, 1, file.LinesFound())

	_, ok = report.File("c.js")
	assert.False(t, ok)
	assert.Equal(t, 2, report.Len())
}

func TestPath_TrimPrefix(t *testing.T) {
	assert.Equal(t, Path("src/a.js"), Path("/ws/src/a.js").TrimPrefix("/ws/"))
	assert.Equal(t, Path("/other/a.js"), Path("/other/a.js").TrimPrefix("/ws/"))
	assert.Equal(t, Path("/ws/a.js"), Path("/ws/a.js").TrimPrefix(""))
}
