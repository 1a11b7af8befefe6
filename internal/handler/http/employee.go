package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/handler/http/middleware"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UploadProfileImage(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService user.EmployeeService
}

func NewEmployeeHandler(employeeService user.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _ := middleware.Claims(r)
	result, err := h.employeeService.CreateEmployee(r.Context(), actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Me implements EmployeeHandler.
func (h *employeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.Claims(r)

	result, err := h.employeeService.GetEmployee(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UploadProfileImage implements EmployeeHandler.
func (h *employeeHandlerImpl) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	// Max 5MB
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Field 'image' is required", nil)
		return
	}
	defer file.Close()

	actorID, _ := middleware.Claims(r)
	targetID := chi.URLParam(r, "id")

	result, err := h.employeeService.UploadProfileImage(r.Context(), actorID, targetID, file, header)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile image updated", result)
}
