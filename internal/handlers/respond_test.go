package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnayLodha/kairo/internal/validation"
)

func TestRespondErrorWritesStatusAndJSONBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondError(recorder, 418, "Teapot")

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var body errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body.Error != "Teapot" {
		t.Fatalf("expected error 'Teapot', got %q", body.Error)
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, "Internal server error", "", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Internal server error") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestRespondValidationError(t *testing.T) {
	t.Run("validation failure maps to 400", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		err := validation.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}

		respondValidationError(recorder, "Error saving", err)

		if recorder.Code != 400 {
			t.Fatalf("expected status 400, got %d", recorder.Code)
		}
		if !strings.Contains(recorder.Body.String(), "date must be YYYY-MM-DD") {
			t.Fatalf("expected validation message in body, got %q", recorder.Body.String())
		}
	})

	t.Run("other errors map to 500", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.Default()
		originalOutput := logger.Writer()
		logger.SetOutput(&buf)
		defer logger.SetOutput(originalOutput)

		recorder := httptest.NewRecorder()

		respondValidationError(recorder, "Error saving", errors.New("connection refused"))

		if recorder.Code != 500 {
			t.Fatalf("expected status 500, got %d", recorder.Code)
		}
		if strings.Contains(recorder.Body.String(), "connection refused") {
			t.Fatal("internal error leaked into the response body")
		}
	})
}

func TestRequestDate(t *testing.T) {
	t.Run("explicit valid date", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/tasks?date=2025-06-15", nil)
		date, err := requestDate(r)
		if err != nil {
			t.Fatalf("requestDate() failed: %v", err)
		}
		if date != "2025-06-15" {
			t.Errorf("requestDate() = %q, want 2025-06-15", date)
		}
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/tasks?date=June+15", nil)
		if _, err := requestDate(r); err == nil {
			t.Error("requestDate() accepted an invalid date")
		}
	})

	t.Run("absent date defaults to today", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/tasks", nil)
		date, err := requestDate(r)
		if err != nil {
			t.Fatalf("requestDate() failed: %v", err)
		}
		if err := validation.ValidateDate(date); err != nil {
			t.Errorf("default date %q is not a valid calendar day", date)
		}
	})
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"ok","extra":1}`))
	if err := decodeJSON(r, &dst); err == nil {
		t.Error("decodeJSON() accepted an unknown field")
	}

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"ok"}`))
	if err := decodeJSON(r, &dst); err != nil {
		t.Errorf("decodeJSON() failed on valid input: %v", err)
	}
	if dst.Title != "ok" {
		t.Errorf("Title = %q, want ok", dst.Title)
	}
}
