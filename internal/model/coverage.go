package model

// Line is a single instrumented line and the number of times it was executed.
type Line struct {
	Number int
	Hits   int
}

// FileRecord holds the line coverage collected for one source file.
type FileRecord struct {
	Path  Path
	Lines []Line // in order of first appearance
}

// LinesFound returns the number of instrumented lines.
func (f FileRecord) LinesFound() int {
	return len(f.Lines)
}

// LinesHit returns the number of instrumented lines executed at least once.
func (f FileRecord) LinesHit() int {
	hit := 0

	for _, line := range f.Lines {
		if line.Hits > 0 {
			hit++
		}
	}

	return hit
}

// Percentage returns the line coverage of the file in [0, 100].
// A file without instrumented lines has nothing uncovered and reports 100.
func (f FileRecord) Percentage() float64 {
	found := f.LinesFound()
	if found == 0 {
		return 100.0
	}

	return float64(f.LinesHit()) / float64(found) * 100
}

// Hits returns the hit count recorded for the given line number.
func (f FileRecord) Hits(number int) (int, bool) {
	for _, line := range f.Lines {
		if line.Number == number {
			return line.Hits, true
		}
	}

	return 0, false
}

// CoverageReport is one full coverage run, files in order of first appearance.
type CoverageReport struct {
	Files []FileRecord
}

// File looks up a record by its exact path.
func (r CoverageReport) File(path Path) (FileRecord, bool) {
	for _, file := range r.Files {
		if file.Path == path {
			return file, true
		}
	}

	return FileRecord{}, false
}

// Len returns the number of file records.
func (r CoverageReport) Len() int {
	return len(r.Files)
}
