package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"covdelta.dev/pkg/covdelta/internal/adapter"
	"covdelta.dev/pkg/covdelta/internal/controller"
	m "covdelta.dev/pkg/covdelta/internal/model"
	"golang.org/x/sync/errgroup"
)

const checkStatusCompleted = "completed"

// ReportArgs contains the arguments for producing a coverage report.
type ReportArgs struct {
	Name        string
	Current     m.Path
	Baseline    m.Path // optional
	MinCoverage float64
	Precision   int
}

// Result is the outcome of a report run.
type Result struct {
	Skipped    bool // no current report was found
	Passed     bool
	Percentage float64
	Check      m.Check
}

// Workflow defines the coverage report workflow.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) (Result, error)
}

type workflow struct {
	adapter.ReportSource
	adapter.ContextProvider
	adapter.CheckPublisher
	controller.Renderer
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.ReportSource,
	provider adapter.ContextProvider,
	publisher adapter.CheckPublisher,
	renderer controller.Renderer,
	ui controller.UI,
) Workflow {
	return &workflow{
		ReportSource:    source,
		ContextProvider: provider,
		CheckPublisher:  publisher,
		Renderer:        renderer,
		UI:              ui,
	}
}

// loadedReports holds the parsed inputs. baseline is nil when absent.
type loadedReports struct {
	current        m.CoverageReport
	currentMissing bool
	baseline       *m.CoverageReport
}

// Report reads and parses the reports, compares them, publishes a check and
// returns whether the minimum coverage was met.
func (w *workflow) Report(ctx context.Context, args ReportArgs) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	reports, err := w.loadReports(ctx, args)
	if err != nil {
		slog.Error("Failed to load coverage reports", "error", err)
		return Result{}, err
	}

	if reports.currentMissing {
		slog.Info("no coverage report found, exiting", "path", args.Current)
		w.DisplaySkipped(ctx, args.Current)

		return Result{Skipped: true, Passed: true}, nil
	}

	ci, err := w.Resolve(ctx)
	if err != nil {
		slog.Error("Failed to resolve CI context", "error", err)
		return Result{}, fmt.Errorf("resolve context: %w", err)
	}

	opts := ci.Options()
	opts.Precision = args.Precision

	comparison := Compare(reports.current, reports.baseline, opts)

	body, err := w.Render(comparison)
	if err != nil {
		slog.Error("Failed to render comparison", "error", err)
		return Result{}, fmt.Errorf("render comparison: %w", err)
	}

	passed := Passes(reports.current, args.MinCoverage)
	check := newCheck(args.Name, ci.CheckSHA, passed, comparison.Total.Current, body)

	if err := w.Publish(ctx, check); err != nil {
		slog.Error("Failed to publish check", "error", err)
		return Result{}, fmt.Errorf("publish check: %w", err)
	}

	w.DisplayComparison(ctx, comparison)
	w.DisplayCheck(ctx, check)

	slog.Info("coverage report completed",
		"name", args.Name,
		"percentage", comparison.Total.Current,
		"minimum", args.MinCoverage,
		"passed", passed,
	)

	return Result{Passed: passed, Percentage: comparison.Total.Current, Check: check}, nil
}

// loadReports reads and parses the current and baseline reports in parallel.
func (w *workflow) loadReports(ctx context.Context, args ReportArgs) (loadedReports, error) {
	var (
		loaded       loadedReports
		baseline     m.CoverageReport
		baselineRead bool
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		raw, err := w.Read(groupCtx, args.Current)
		if errors.Is(err, adapter.ErrReportNotFound) {
			loaded.currentMissing = true
			return nil
		}

		if err != nil {
			return fmt.Errorf("read %s: %w", args.Current, err)
		}

		report, err := Parse(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args.Current, err)
		}

		loaded.current = report

		return nil
	})

	if args.Baseline != "" {
		group.Go(func() error {
			raw, err := w.Read(groupCtx, args.Baseline)
			if errors.Is(err, adapter.ErrReportNotFound) {
				slog.Warn("no baseline coverage report found, ignoring", "path", args.Baseline)
				w.DisplayMissingBaseline(groupCtx, args.Baseline)

				return nil
			}

			if err != nil {
				return fmt.Errorf("read %s: %w", args.Baseline, err)
			}

			if strings.TrimSpace(raw) == "" {
				slog.Warn("baseline coverage report is empty, ignoring", "path", args.Baseline)
				w.DisplayMissingBaseline(groupCtx, args.Baseline)

				return nil
			}

			report, err := Parse(raw)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args.Baseline, err)
			}

			baseline = report
			baselineRead = true

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return loadedReports{}, err
	}

	if baselineRead {
		loaded.baseline = &baseline
	}

	return loaded, nil
}

func newCheck(name, sha string, passed bool, percentage float64, summary string) m.Check {
	conclusion := m.ConclusionSuccess
	icon := "✔️"

	if !passed {
		conclusion = m.ConclusionFailure
		icon = "❌"
	}

	return m.Check{
		Name:       name,
		Title:      name + " " + icon,
		Conclusion: conclusion,
		Status:     checkStatusCompleted,
		HeadSHA:    sha,
		Percentage: percentage,
		Summary:    summary,
	}
}
