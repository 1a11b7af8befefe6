package report

import (
	"context"
	"io"
	"time"
)

// Export formats for the weekly matrix.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ReportService computes presence/absence aggregates and renders weekly
// matrices for review and export.
type ReportService interface {
	// Dashboard aggregates department rates, per-employee window
	// summaries and all-time cards over [start, end] clipped to today.
	Dashboard(ctx context.Context, start, end time.Time) (DashboardResponse, error)

	// HistoryWeeks paginates the weeks overlapping [start, end].
	HistoryWeeks(ctx context.Context, start, end time.Time, page int) (HistoryResponse, error)

	// WeekMatrix builds the employees-by-weekday grid for the week.
	WeekMatrix(ctx context.Context, weekStart time.Time) (WeekMatrix, error)

	// Export writes the week matrix in the requested format. The actor
	// is recorded in the audit log.
	Export(ctx context.Context, actorID string, weekStart time.Time, format string, w io.Writer) error
}
