package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	WeekMatrix(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Dashboard implements ReportHandler.
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	end := parseDateParam(r, "end_date")
	start := end.AddDate(0, 0, -6)
	if value := r.URL.Query().Get("start_date"); value != "" {
		start = parseDateParam(r, "start_date")
	}

	result, err := h.reportService.Dashboard(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements ReportHandler.
func (h *reportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	end := parseDateParam(r, "end_date")
	start := end.AddDate(0, -3, 0)
	if value := r.URL.Query().Get("start_date"); value != "" {
		start = parseDateParam(r, "start_date")
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.reportService.HistoryWeeks(r.Context(), start, end, page)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// weekStartParam reads the week_start query parameter, defaulting to the
// current week when absent. Malformed values are an error, not a silent
// fallback: a bad date on a report must not render some other week.
func weekStartParam(r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get("week_start")
	if value == "" {
		return time.Now(), true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// WeekMatrix implements ReportHandler.
func (h *reportHandlerImpl) WeekMatrix(w http.ResponseWriter, r *http.Request) {
	weekStart, ok := weekStartParam(r)
	if !ok {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.reportService.WeekMatrix(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler. Streams the rendered file; headers
// must be written before the body, so rendering errors after the first
// byte can only be logged.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)
	weekStart, ok := weekStartParam(r)
	if !ok {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatCSV
	}

	var contentType string
	switch format {
	case report.FormatCSV:
		contentType = "text/csv"
	case report.FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		response.HandleError(w, report.ErrUnsupportedFormat)
		return
	}

	filename := fmt.Sprintf("attendance_week_%s.%s", weekStart.Format("2006-01-02"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.reportService.Export(r.Context(), actorID, weekStart, format, w); err != nil {
		response.HandleError(w, err)
		return
	}
}
