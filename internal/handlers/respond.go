package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/AnayLodha/kairo/internal/stats"
	"github.com/AnayLodha/kairo/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes payload as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, userMsg string) {
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithError logs the underlying error and writes a JSON error body.
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondError(w, status, userMsg)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// respondValidationError maps a validation failure to 400 and everything
// else to a logged 500.
func respondValidationError(w http.ResponseWriter, logMsg string, err error) {
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, "Internal server error", logMsg, err)
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// requestDate returns the validated date query parameter, defaulting to
// today's date in the server's local time zone when absent.
func requestDate(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().Format(stats.DateLayout), nil
	}
	if err := validation.ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}
