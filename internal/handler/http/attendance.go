package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseDateParam reads a YYYY-MM-DD query parameter, defaulting to now.
func parseDateParam(r *http.Request, name string) time.Time {
	if value := r.URL.Query().Get(name); value != "" {
		if parsed, err := time.Parse("2006-01-02", value); err == nil {
			return parsed
		}
	}
	return time.Now()
}

// GetWeek implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)
	targetUserID := r.URL.Query().Get("user_id")
	weekStart := parseDateParam(r, "week_start")

	result, err := h.attendanceService.GetWeek(r.Context(), actorID, targetUserID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _ := middleware.Claims(r)
	result, err := h.attendanceService.SaveDay(r.Context(), actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)

	result, err := h.attendanceService.CheckIn(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)

	result, err := h.attendanceService.CheckOut(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Pending implements AttendanceHandler.
func (h *attendanceHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)

	result, err := h.attendanceService.PendingVerification(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Verify implements AttendanceHandler.
func (h *attendanceHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req attendance.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _ := middleware.Claims(r)
	result, err := h.attendanceService.VerifyBatch(r.Context(), actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
