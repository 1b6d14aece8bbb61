package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/dashapp/internal/common"
)

// ListTasks handles GET /api/v1/tasks with optional skip/limit query params.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tasks, err := h.tasks.List(r.Context(), userID, skip, limit)
	if err != nil {
		h.logger.Error(r.Context(), "list tasks failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Budget      int64  `json:"budget"`
}

// CreateTask handles POST /api/v1/tasks.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.tasks.Create(r.Context(), userID, req.Title, req.Description, req.Status, req.Budget)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid task status")
			return
		}
		h.logger.Error(r.Context(), "create task failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// UpdateTask handles PUT /api/v1/tasks/{id}.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	id, err := taskIDFromRequest(r)
	if err != nil {
		writeDetail(w, http.StatusNotFound, detailTaskNotFound)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.tasks.Update(r.Context(), userID, id, req.Title, req.Description, req.Status, req.Budget)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeDetail(w, http.StatusNotFound, detailTaskNotFound)
		case errors.Is(err, common.ErrorValidation):
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid task status")
		default:
			h.logger.Error(r.Context(), "update task failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, detailInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// DeleteTask handles DELETE /api/v1/tasks/{id} and returns the deleted row.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	id, err := taskIDFromRequest(r)
	if err != nil {
		writeDetail(w, http.StatusNotFound, detailTaskNotFound)
		return
	}

	task, err := h.tasks.Delete(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, detailTaskNotFound)
			return
		}
		h.logger.Error(r.Context(), "delete task failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}
