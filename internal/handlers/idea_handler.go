package handlers

import (
	"errors"
	"net/http"

	"github.com/AnayLodha/kairo/internal/service"
)

// IdeaHandler handles creative idea HTTP requests
type IdeaHandler struct {
	ideaService *service.IdeaService
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService *service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// List returns the user's ideas, newest first
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	ideas, err := h.ideaService.List(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error listing ideas", err)
		return
	}

	respondJSON(w, http.StatusOK, ideas)
}

// Create captures a new idea
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Title    string `json:"title"`
		Note     string `json:"note"`
		Category string `json:"category"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	idea, err := h.ideaService.Add(user.ID, req.Title, req.Note, req.Category)
	if err != nil {
		respondValidationError(w, "Error creating idea", err)
		return
	}

	respondJSON(w, http.StatusCreated, idea)
}

// Delete removes an idea
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	if err := h.ideaService.Delete(id, user.ID); err != nil {
		if errors.Is(err, service.ErrIdeaNotFound) {
			respondError(w, http.StatusNotFound, "Idea not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error deleting idea", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
