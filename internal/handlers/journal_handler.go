package handlers

import (
	"net/http"

	"github.com/AnayLodha/kairo/internal/service"
)

// JournalHandler handles mood check-in and reflection HTTP requests
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Mood returns recent mood entries, today's entry, and the weekly
// average energy
func (h *JournalHandler) Mood(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.journalService.MoodOverview(user.ID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading mood entries", err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// SaveMood records or replaces today's mood check-in
func (h *JournalHandler) SaveMood(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Mood        string `json:"mood"`
		EnergyLevel int    `json:"energy_level"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.journalService.SaveMood(user.ID, req.Mood, req.EnergyLevel, today)
	if err != nil {
		respondValidationError(w, "Error saving mood", err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// Reflections returns recent reflections and today's if present
func (h *JournalHandler) Reflections(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.journalService.ReflectionOverview(user.ID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading reflections", err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// SaveReflection records or replaces today's reflection
func (h *JournalHandler) SaveReflection(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reflection, err := h.journalService.SaveReflection(user.ID, req.Content, today)
	if err != nil {
		respondValidationError(w, "Error saving reflection", err)
		return
	}

	respondJSON(w, http.StatusOK, reflection)
}
