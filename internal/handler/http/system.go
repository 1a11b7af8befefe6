package http

import (
	"net/http"
	"strconv"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
	"github.com/naumur/presence-backend-go/internal/service/system"
)

type SystemHandler interface {
	RunBackup(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	OnlineToday(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	systemService *system.SystemService
	recorder      *auditsvc.Recorder
	presenceSvc   presence.PresenceService
}

func NewSystemHandler(systemService *system.SystemService, recorder *auditsvc.Recorder, presenceSvc presence.PresenceService) SystemHandler {
	return &systemHandlerImpl{
		systemService: systemService,
		recorder:      recorder,
		presenceSvc:   presenceSvc,
	}
}

// RunBackup implements SystemHandler.
func (h *systemHandlerImpl) RunBackup(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)

	path, err := h.systemService.RunBackup(r.Context(), &actorID)
	if err != nil {
		response.InternalServerError(w, "Backup failed")
		return
	}

	response.SuccessWithMessage(w, "Backup completed", map[string]string{"path": path})
}

// Logs implements SystemHandler.
func (h *systemHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, total, err := h.recorder.List(r.Context(), audit.ListFilter{
		EventType: r.URL.Query().Get("event_type"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	logs := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, audit.ToEntryResponse(e))
	}

	response.SuccessWithMeta(w, logs, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
	})
}

// OnlineToday implements SystemHandler.
func (h *systemHandlerImpl) OnlineToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.presenceSvc.OnlineToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
