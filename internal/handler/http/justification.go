package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/naumur/presence-backend-go/internal/domain/justification"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{
		justificationService: justificationService,
	}
}

// Create implements JustificationHandler. Multipart: form fields plus an
// optional receipt file.
func (h *justificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := justification.CreateRequest{
		UserID:      r.FormValue("user_id"),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
		Reason:      r.FormValue("reason"),
		OtherReason: r.FormValue("other_reason"),
	}

	if file, header, err := r.FormFile("receipt"); err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = header
	} else if err != http.ErrMissingFile {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actorID, _ := middleware.Claims(r)
	result, err := h.justificationService.Create(r.Context(), actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification created", result)
}

// Approve implements JustificationHandler.
func (h *justificationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)
	id := chi.URLParam(r, "id")

	result, err := h.justificationService.Approve(r.Context(), actorID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification approved", result)
}

// Reject implements JustificationHandler.
func (h *justificationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)
	id := chi.URLParam(r, "id")

	result, err := h.justificationService.Reject(r.Context(), actorID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification rejected", result)
}

// List implements JustificationHandler.
func (h *justificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := justification.ListFilter{
		UserID: r.URL.Query().Get("user_id"),
		Status: justification.Status(r.URL.Query().Get("status")),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: result.Total,
	})
}
