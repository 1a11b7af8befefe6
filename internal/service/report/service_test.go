package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyService(today time.Time) *ReportServiceImpl {
	return &ReportServiceImpl{now: func() time.Time { return today }}
}

func TestHistoryWeeksNewestFirst(t *testing.T) {
	today := time.Date(2026, time.January, 28, 10, 0, 0, 0, time.UTC) // Wednesday
	svc := historyService(today)

	result, err := svc.HistoryWeeks(context.Background(),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		1)
	require.NoError(t, err)

	// End clipped to today: the current week leads, weeks going back to
	// the one containing Jan 1.
	require.NotEmpty(t, result.Weeks)
	assert.Equal(t, "2026-01-26", result.Weeks[0].Start)
	assert.Equal(t, "2025-12-29", result.Weeks[len(result.Weeks)-1].Start)
	assert.Equal(t, 5, len(result.Weeks))
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
}

func TestHistoryWeeksPagination(t *testing.T) {
	today := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	svc := historyService(today)

	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.HistoryWeeks(context.Background(), start, today, 1)
	require.NoError(t, err)
	assert.Len(t, first.Weeks, historyPageSize)
	assert.Greater(t, first.TotalPages, 1)

	last, err := svc.HistoryWeeks(context.Background(), start, today, first.TotalPages)
	require.NoError(t, err)
	assert.NotEmpty(t, last.Weeks)

	// Out-of-range page snaps to the last one
	overflow, err := svc.HistoryWeeks(context.Background(), start, today, 99)
	require.NoError(t, err)
	assert.Equal(t, first.TotalPages, overflow.Page)
}
