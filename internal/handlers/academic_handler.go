package handlers

import (
	"errors"
	"net/http"

	"github.com/AnayLodha/kairo/internal/service"
)

// AcademicHandler handles exam mark and subject HTTP requests
type AcademicHandler struct {
	academicService *service.AcademicService
}

// NewAcademicHandler creates a new academic handler
func NewAcademicHandler(academicService *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academicService: academicService}
}

// ListMarks returns all of a user's exam marks, oldest first
func (h *AcademicHandler) ListMarks(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	marks, err := h.academicService.ListMarks(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error listing marks", err)
		return
	}

	respondJSON(w, http.StatusOK, marks)
}

// CreateMark records a new exam mark
func (h *AcademicHandler) CreateMark(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Subject       string  `json:"subject"`
		ExamType      string  `json:"exam_type"`
		MarksObtained float64 `json:"marks_obtained"`
		MaxMarks      float64 `json:"max_marks"`
		Date          string  `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	mark, err := h.academicService.AddMark(user.ID, req.Subject, req.ExamType, req.MarksObtained, req.MaxMarks, req.Date)
	if err != nil {
		respondValidationError(w, "Error creating mark", err)
		return
	}

	respondJSON(w, http.StatusCreated, mark)
}

// DeleteMark removes an exam mark
func (h *AcademicHandler) DeleteMark(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid mark ID")
		return
	}

	if err := h.academicService.DeleteMark(id, user.ID); err != nil {
		if errors.Is(err, service.ErrMarkNotFound) {
			respondError(w, http.StatusNotFound, "Mark not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error deleting mark", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Summary returns per-subject averages, trends, and the overall average
func (h *AcademicHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	summary, err := h.academicService.Summarize(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error summarizing marks", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ListSubjects returns the user's subjects, alphabetical
func (h *AcademicHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	subjects, err := h.academicService.ListSubjects(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error listing subjects", err)
		return
	}

	respondJSON(w, http.StatusOK, subjects)
}

// CreateSubject adds a subject to the user's list
func (h *AcademicHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	subject, err := h.academicService.AddSubject(user.ID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrSubjectExists) {
			respondError(w, http.StatusConflict, "Subject already exists")
			return
		}
		respondValidationError(w, "Error creating subject", err)
		return
	}

	respondJSON(w, http.StatusCreated, subject)
}

// DeleteSubject removes a subject. Subjects with marks recorded against
// them are protected.
func (h *AcademicHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid subject ID")
		return
	}

	if err := h.academicService.DeleteSubject(id, user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			respondError(w, http.StatusNotFound, "Subject not found")
		case errors.Is(err, service.ErrSubjectInUse):
			respondError(w, http.StatusConflict, "Subject has marks recorded against it")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error deleting subject", err)
		}
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// SeedSubjects restores the default subject list, skipping any the user
// already has
func (h *AcademicHandler) SeedSubjects(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := h.academicService.SeedDefaultSubjects(user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error seeding subjects", err)
		return
	}

	subjects, err := h.academicService.ListSubjects(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error listing subjects", err)
		return
	}

	respondJSON(w, http.StatusOK, subjects)
}
