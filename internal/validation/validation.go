package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AnayLodha/kairo/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateTitle checks a task or idea title
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD calendar day string
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	return nil
}

// ValidateExamType checks an exam-type tag
func ValidateExamType(examType string) error {
	if !models.IsValidExamType(examType) {
		return ValidationError{Field: "exam_type", Message: "unknown exam type"}
	}
	return nil
}

// ValidateMarks checks an exam result. Obtained marks above the maximum
// are deliberately accepted (bonus marks happen); only negative obtained
// and non-positive max are rejected.
func ValidateMarks(marksObtained, maxMarks float64) error {
	if marksObtained < 0 {
		return ValidationError{Field: "marks_obtained", Message: "marks cannot be negative"}
	}
	if maxMarks <= 0 {
		return ValidationError{Field: "max_marks", Message: "max marks must be positive"}
	}
	return nil
}

// ValidateMood checks a mood check-in value
func ValidateMood(mood string) error {
	if !models.IsValidMood(mood) {
		return ValidationError{Field: "mood", Message: "unknown mood"}
	}
	return nil
}

// ValidateEnergyLevel checks a 1-5 energy rating
func ValidateEnergyLevel(level int) error {
	if level < 1 || level > 5 {
		return ValidationError{Field: "energy_level", Message: "energy level must be between 1 and 5"}
	}
	return nil
}

// ValidateIdeaCategory checks an optional idea category
func ValidateIdeaCategory(category string) error {
	if category == "" {
		return nil
	}
	if !models.IsValidIdeaCategory(category) {
		return ValidationError{Field: "category", Message: "unknown category"}
	}
	return nil
}

// ValidateSubjectName checks a subject name after trimming
func ValidateSubjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "name", Message: "subject name is required"}
	}
	return nil
}
