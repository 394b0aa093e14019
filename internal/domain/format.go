package domain

import (
	"strconv"
	"strings"

	m "covdelta.dev/pkg/covdelta/internal/model"
)

// Format serialises a report back into LCOV records.
func Format(report m.CoverageReport) string {
	var b strings.Builder

	for _, file := range report.Files {
		b.WriteString(tagSourceFile + ":" + string(file.Path) + "\n")

		for _, line := range file.Lines {
			b.WriteString(tagLineData + ":" + strconv.Itoa(line.Number) + "," + strconv.Itoa(line.Hits) + "\n")
		}

		b.WriteString("LF:" + strconv.Itoa(file.LinesFound()) + "\n")
		b.WriteString("LH:" + strconv.Itoa(file.LinesHit()) + "\n")
		b.WriteString(endOfRecord + "\n")
	}

	return b.String()
}
