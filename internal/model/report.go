package model

// Classification describes how a file's coverage moved against the baseline.
type Classification int

const (
	// New marks a file absent from the baseline.
	New Classification = iota
	// Removed marks a file present only in the baseline. Never rendered as a row.
	Removed
	// Unchanged marks a zero delta after rounding.
	Unchanged
	// Improved marks a positive delta.
	Improved
	// Regressed marks a negative delta.
	Regressed
)

func (c Classification) String() string {
	switch c {
	case New:
		return "new"
	case Removed:
		return "removed"
	case Unchanged:
		return "unchanged"
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "unknown"
	}
}

// CoverageDelta is one row of a comparison. Baseline and Delta are nil when
// there is nothing to compare against.
type CoverageDelta struct {
	Path           Path
	Current        float64
	Baseline       *float64
	Delta          *float64
	Classification Classification
}

// Totals holds the aggregate line counters of a report.
type Totals struct {
	Hit   int
	Found int
}

// Comparison is the result of diffing a current report against a baseline.
type Comparison struct {
	Options       Options
	Rows          []CoverageDelta // sorted by path
	Total         CoverageDelta   // aggregate row, Path is empty
	HasBaseline   bool
	Removed       []Path
	CurrentTotals Totals
	BaseTotals    Totals
}

// DefaultPrecision is the number of decimals used for deltas and display.
const DefaultPrecision = 2

// Options carries the header context and the path prefix used to shorten
// absolute paths. Any field may be empty.
type Options struct {
	Repository string
	Prefix     string
	Commit     string
	Head       string
	Base       string
	Precision  int
}

// Decimals returns the configured precision or DefaultPrecision.
func (o Options) Decimals() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}

	return o.Precision
}
