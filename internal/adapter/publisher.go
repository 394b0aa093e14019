package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"gopkg.in/yaml.v3"
)

// SummaryFormat selects how a check is written by the local publishers.
type SummaryFormat string

// Supported summary formats.
const (
	FormatMarkdown SummaryFormat = "markdown"
	FormatYAML     SummaryFormat = "yaml"
)

// ParseSummaryFormat validates a format name. Empty selects markdown.
func ParseSummaryFormat(value string) (SummaryFormat, error) {
	switch SummaryFormat(value) {
	case "", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported summary format %q", value)
	}
}

// CheckPublisher hands a finished check to its consumer, e.g. a check-run
// API or a CI step summary.
type CheckPublisher interface {
	Publish(ctx context.Context, check m.Check) error
}

// WriterPublisher writes checks to an io.Writer.
type WriterPublisher struct {
	w      io.Writer
	format SummaryFormat
}

// NewWriterPublisher creates a publisher writing to w.
func NewWriterPublisher(w io.Writer, format SummaryFormat) *WriterPublisher {
	return &WriterPublisher{w: w, format: format}
}

// Publish implements CheckPublisher.
func (p *WriterPublisher) Publish(ctx context.Context, check m.Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeCheck(check, p.format)
	if err != nil {
		return err
	}

	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("write check: %w", err)
	}

	return nil
}

// FilePublisher appends checks to a file such as $GITHUB_STEP_SUMMARY.
type FilePublisher struct {
	path   m.Path
	format SummaryFormat
}

// NewFilePublisher creates a publisher appending to path.
func NewFilePublisher(path m.Path, format SummaryFormat) *FilePublisher {
	return &FilePublisher{path: path, format: format}
}

// Publish implements CheckPublisher.
func (p *FilePublisher) Publish(ctx context.Context, check m.Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeCheck(check, p.format)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(string(p.path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open summary file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write summary file: %w", err)
	}

	slog.Info("published check", "name", check.Name, "conclusion", check.Conclusion, "path", p.path)

	return nil
}

func encodeCheck(check m.Check, format SummaryFormat) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(check)
		if err != nil {
			return nil, fmt.Errorf("encode check: %w", err)
		}

		return data, nil
	case FormatMarkdown, "":
		return []byte("# " + check.Title + "\n\n" + check.Summary), nil
	default:
		return nil, fmt.Errorf("unsupported summary format %q", format)
	}
}
