package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/focusflow/focusflow-go/internal/middleware"
	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/service"
)

// TaskHandler handles HTTP requests for todo operations.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleList handles GET /api/todos/ requests.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())

	tasks, err := h.service.List(r.Context(), caller)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// HandleCreate handles POST /api/todos/ requests.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())

	var req model.CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.service.Create(r.Context(), caller, req)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// HandleUpdate handles PUT /api/todos/{id} requests.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	var req model.UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.service.Update(r.Context(), caller, taskID, req)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// HandleDelete handles DELETE /api/todos/{id} requests.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), caller, taskID); err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Todo removed"))
}

// HandleToggle handles PATCH /api/todos/{id}/toggle requests.
func (h *TaskHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	task, err := h.service.ToggleComplete(r.Context(), caller, taskID)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		writeJSON(w, http.StatusBadRequest, messageResponse("Title is required"))
	case errors.Is(err, service.ErrInvalidPriority):
		writeJSON(w, http.StatusBadRequest, messageResponse("Invalid priority"))
	case errors.Is(err, service.ErrTaskNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse("Todo not found"))
	case errors.Is(err, service.ErrNotOwner):
		writeJSON(w, http.StatusUnauthorized, messageResponse("Not authorized"))
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
	}
}
