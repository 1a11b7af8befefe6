package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naumur/presence-backend-go/internal/domain/report"
)

type stubReportService struct {
	exportCalls int
}

func (s *stubReportService) Dashboard(ctx context.Context, start, end time.Time) (report.DashboardResponse, error) {
	return report.DashboardResponse{}, nil
}

func (s *stubReportService) HistoryWeeks(ctx context.Context, start, end time.Time, page int) (report.HistoryResponse, error) {
	return report.HistoryResponse{}, nil
}

func (s *stubReportService) WeekMatrix(ctx context.Context, weekStart time.Time) (report.WeekMatrix, error) {
	return report.WeekMatrix{}, nil
}

func (s *stubReportService) Export(ctx context.Context, actorID string, weekStart time.Time, format string, w io.Writer) error {
	s.exportCalls++
	return nil
}

func TestWeekStartParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/reports/export?week_start=2026-01-05", nil)
	parsed, ok := weekStartParam(r)
	require.True(t, ok)
	assert.Equal(t, "2026-01-05", parsed.Format("2006-01-02"))

	r = httptest.NewRequest(http.MethodGet, "/reports/export", nil)
	_, ok = weekStartParam(r)
	assert.True(t, ok, "absent week_start falls back to the current week")

	r = httptest.NewRequest(http.MethodGet, "/reports/export?week_start=not-a-date", nil)
	_, ok = weekStartParam(r)
	assert.False(t, ok)
}

func TestExportRejectsMalformedWeekStart(t *testing.T) {
	svc := &stubReportService{}
	handler := NewReportHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/reports/export?week_start=05-01-2026", nil)
	w := httptest.NewRecorder()
	handler.Export(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.exportCalls)
}
