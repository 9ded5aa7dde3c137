package handlers

import (
	"net/http"

	"github.com/AnayLodha/kairo/internal/service"
)

// StreakHandler handles daily streak HTTP requests
type StreakHandler struct {
	streakService *service.StreakService
}

// NewStreakHandler creates a new streak handler
func NewStreakHandler(streakService *service.StreakService) *StreakHandler {
	return &StreakHandler{streakService: streakService}
}

// Get returns the user's streak record
func (h *StreakHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	streak, err := h.streakService.Get(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading streak", err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}

// CheckIn advances the streak if at least one of today's tasks is
// completed, otherwise returns the record unchanged
func (h *StreakHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	streak, err := h.streakService.CheckIn(user.ID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error checking in", err)
		return
	}

	respondJSON(w, http.StatusOK, streak)
}
