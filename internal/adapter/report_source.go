// Package adapter contains the infrastructure collaborators of the report
// workflow: reading coverage files, discovering CI context and publishing checks.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	m "covdelta.dev/pkg/covdelta/internal/model"
)

// ErrReportNotFound is returned when a coverage report cannot be read.
var ErrReportNotFound = errors.New("coverage report not found")

// ReportSource loads raw coverage report text.
type ReportSource interface {
	// Read returns the report contents. Any failure to read the file wraps
	// ErrReportNotFound so callers can degrade to "no report available".
	Read(ctx context.Context, path m.Path) (string, error)
}

// LocalReportSource reads reports from the local filesystem.
type LocalReportSource struct{}

// NewLocalReportSource constructs a LocalReportSource.
func NewLocalReportSource() *LocalReportSource {
	return &LocalReportSource{}
}

// Read loads the file at path.
func (s *LocalReportSource) Read(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Debug("failed to read coverage report", "path", path, "error", err)
		return "", fmt.Errorf("%w: %s: %w", ErrReportNotFound, path, err)
	}

	slog.Debug("read coverage report", "path", path, "bytes", len(data))

	return string(data), nil
}
