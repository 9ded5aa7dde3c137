package handlers

import (
	"errors"
	"net/http"

	"github.com/AnayLodha/kairo/internal/service"
)

// TaskHandler handles daily task HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns the tasks for a day with the derived completion rate
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	date, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := h.taskService.ListDay(user.ID, date)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error listing tasks", err)
		return
	}

	respondJSON(w, http.StatusOK, day)
}

// Create adds a task to a day
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Add(user.ID, req.Title, req.Date)
	if err != nil {
		respondValidationError(w, "Error creating task", err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// Toggle sets a task's completion state
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Toggle(id, user.ID, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error toggling task", err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// Delete removes a task
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(id, user.ID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error deleting task", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
