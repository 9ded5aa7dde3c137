package models

import "time"

// ExamTypes are the recognized exam-type tags, in school-year order
var ExamTypes = []string{
	"UT1",
	"UT2",
	"Half-Yearly",
	"UT3",
	"Final",
}

// AcademicMark records one exam result. Subject is free text that should
// match one of the user's subjects by name.
type AcademicMark struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	Subject       string    `json:"subject"`
	ExamType      string    `json:"exam_type"`
	MarksObtained float64   `json:"marks_obtained"`
	MaxMarks      float64   `json:"max_marks"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Percentage returns the mark as a 0-100 score
func (m *AcademicMark) Percentage() float64 {
	return m.MarksObtained / m.MaxMarks * 100
}

// IsValidExamType reports whether examType is one of the recognized tags
func IsValidExamType(examType string) bool {
	for _, t := range ExamTypes {
		if t == examType {
			return true
		}
	}
	return false
}

// Subject is a user-defined subject name, unique per user
type Subject struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultSubjects are seeded once for new users who have none
var DefaultSubjects = []string{
	"English",
	"Mathematics",
	"Physics",
	"Chemistry",
}
