// Package domain implements LCOV parsing, aggregation and coverage comparison.
package domain

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	m "covdelta.dev/pkg/covdelta/internal/model"
)

// LCOV record tags understood by the parser.
const (
	tagSourceFile     = "SF"
	tagSourceFileLong = "SOURCE_FILE"
	tagLineData       = "DA"
	endOfRecord       = "end_of_record"
	maxRecordBytes    = 1024 * 1024
)

type parseState int

const (
	outsideRecord parseState = iota
	insideRecord
)

// recordBuilder accumulates the lines of the file record being parsed.
type recordBuilder struct {
	path   m.Path
	opened int
	lines  []m.Line
	index  map[int]int
}

func newRecordBuilder(path m.Path, opened int) *recordBuilder {
	return &recordBuilder{
		path:   path,
		opened: opened,
		index:  make(map[int]int),
	}
}

func (b *recordBuilder) set(number, hits int) {
	if i, ok := b.index[number]; ok {
		b.lines[i].Hits = hits
		return
	}

	b.index[number] = len(b.lines)
	b.lines = append(b.lines, m.Line{Number: number, Hits: hits})
}

// reportBuilder collects closed records, merging records that share a path.
type reportBuilder struct {
	files []*recordBuilder
	index map[m.Path]int
}

func (r *reportBuilder) add(record *recordBuilder) {
	if r.index == nil {
		r.index = make(map[m.Path]int)
	}

	i, ok := r.index[record.path]
	if !ok {
		r.index[record.path] = len(r.files)
		r.files = append(r.files, record)

		return
	}

	slog.Debug("merging duplicate source file record", "path", record.path, "line", record.opened)

	existing := r.files[i]
	for _, line := range record.lines {
		existing.set(line.Number, line.Hits)
	}
}

func (r *reportBuilder) build() m.CoverageReport {
	report := m.CoverageReport{}
	if len(r.files) == 0 {
		return report
	}

	report.Files = make([]m.FileRecord, 0, len(r.files))
	for _, file := range r.files {
		report.Files = append(report.Files, m.FileRecord{Path: file.path, Lines: file.lines})
	}

	return report
}

// Parse converts LCOV text into a CoverageReport.
//
// Unknown tags are ignored. It fails with a *MalformedInputError when a line
// data record appears outside a file record, when numeric fields cannot be
// parsed, or when a file record is never terminated.
func Parse(text string) (m.CoverageReport, error) {
	var (
		state   = outsideRecord
		current *recordBuilder
		report  reportBuilder
		lineNum int
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == endOfRecord {
			if state == insideRecord {
				report.add(current)
				current = nil
				state = outsideRecord
			}

			continue
		}

		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		switch tag {
		case tagSourceFile, tagSourceFileLong:
			if state == insideRecord {
				return m.CoverageReport{}, malformed(lineNum, line,
					fmt.Sprintf("record for %q opened at line %d is missing %s", current.path, current.opened, endOfRecord))
			}

			current = newRecordBuilder(m.Path(value), lineNum)
			state = insideRecord

		case tagLineData:
			if state == outsideRecord {
				return m.CoverageReport{}, malformed(lineNum, line, "line data outside of a source file record")
			}

			number, hits, err := parseLineData(value)
			if err != nil {
				return m.CoverageReport{}, malformed(lineNum, line, err.Error())
			}

			current.set(number, hits)

		default:
			// FN, FNDA, FNF, FNH, BRDA, BRF, BRH, LF, LH, TN and friends carry no line coverage.
		}
	}

	if err := scanner.Err(); err != nil {
		return m.CoverageReport{}, malformed(lineNum+1, "", fmt.Sprintf("read record: %v", err))
	}

	if state == insideRecord {
		return m.CoverageReport{}, malformed(current.opened, tagSourceFile+":"+string(current.path),
			"record is missing "+endOfRecord)
	}

	result := report.build()
	slog.Debug("parsed coverage report", "files", result.Len(), "lines", lineNum)

	return result, nil
}

// parseLineData parses "line,hits[,checksum]".
func parseLineData(value string) (int, int, error) {
	fields := strings.Split(value, ",")
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected line,hits but got %d field(s)", len(fields))
	}

	number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line number: %w", err)
	}

	if number < 1 {
		return 0, 0, fmt.Errorf("line number %d is not positive", number)
	}

	hits, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hit count: %w", err)
	}

	if hits < 0 {
		return 0, 0, fmt.Errorf("hit count %d is negative", hits)
	}

	return number, hits, nil
}
