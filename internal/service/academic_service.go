package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/stats"
	"github.com/AnayLodha/kairo/internal/validation"
)

var (
	ErrMarkNotFound    = errors.New("mark not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject already exists")
	// ErrSubjectInUse rejects deleting a subject that marks still reference.
	// The check runs client-side before the delete, not transactionally.
	ErrSubjectInUse = errors.New("subject has marks recorded against it")
)

// AcademicService handles exam marks and subjects
type AcademicService struct {
	markRepo    *repository.AcademicRepository
	subjectRepo *repository.SubjectRepository
	dup         func(error) bool
}

// NewAcademicService creates a new academic service. dup recognizes the
// active driver's unique-constraint violations (used to make default
// subject seeding idempotent).
func NewAcademicService(markRepo *repository.AcademicRepository, subjectRepo *repository.SubjectRepository, dup func(error) bool) *AcademicService {
	return &AcademicService{
		markRepo:    markRepo,
		subjectRepo: subjectRepo,
		dup:         dup,
	}
}

// ListMarks returns all of a user's marks, oldest first
func (s *AcademicService) ListMarks(userID int64) ([]models.AcademicMark, error) {
	return s.markRepo.ListByUser(userID)
}

// AddMark records an exam result
func (s *AcademicService) AddMark(userID int64, subject, examType string, marksObtained, maxMarks float64, date string) (*models.AcademicMark, error) {
	if err := validation.ValidateSubjectName(subject); err != nil {
		return nil, err
	}
	if err := validation.ValidateExamType(examType); err != nil {
		return nil, err
	}
	if err := validation.ValidateMarks(marksObtained, maxMarks); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}

	return s.markRepo.Create(userID, strings.TrimSpace(subject), examType, marksObtained, maxMarks, date)
}

// DeleteMark removes a mark
func (s *AcademicService) DeleteMark(id, userID int64) error {
	affected, err := s.markRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	if affected == 0 {
		return ErrMarkNotFound
	}
	return nil
}

// Summary is the derived academic standing for a user
type Summary struct {
	SubjectAverages []stats.SubjectAverage `json:"subject_averages"`
	OverallAverage  *int                   `json:"overall_average"`
	OverallBand     stats.Band             `json:"overall_band"`
}

// Summarize derives per-subject averages and the overall average. The
// user's subject list takes precedence over subjects inferred from marks.
func (s *AcademicService) Summarize(userID int64) (*Summary, error) {
	marks, err := s.markRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}

	subjects, err := s.subjectRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	names := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		names = append(names, subject.Name)
	}

	overall := stats.OverallAverage(marks)
	return &Summary{
		SubjectAverages: stats.SubjectAverages(marks, names),
		OverallAverage:  overall,
		OverallBand:     stats.ScoreBand(overall),
	}, nil
}

// ListSubjects returns a user's subjects ordered by name
func (s *AcademicService) ListSubjects(userID int64) ([]models.Subject, error) {
	return s.subjectRepo.ListByUser(userID)
}

// AddSubject creates a subject after trimming its name
func (s *AcademicService) AddSubject(userID int64, name string) (*models.Subject, error) {
	if err := validation.ValidateSubjectName(name); err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.Create(userID, strings.TrimSpace(name))
	if err != nil {
		if s.dup != nil && s.dup(err) {
			return nil, ErrSubjectExists
		}
		return nil, fmt.Errorf("failed to add subject: %w", err)
	}
	return subject, nil
}

// DeleteSubject removes a subject after verifying no marks reference it.
// The pre-check is the only guard; the delete is rejected before any
// database write when referencing marks exist.
func (s *AcademicService) DeleteSubject(id, userID int64) error {
	subject, err := s.subjectRepo.GetByID(id, userID)
	if err != nil {
		return fmt.Errorf("failed to get subject: %w", err)
	}
	if subject == nil {
		return ErrSubjectNotFound
	}

	count, err := s.markRepo.CountBySubject(userID, subject.Name)
	if err != nil {
		return fmt.Errorf("failed to check subject usage: %w", err)
	}
	if count > 0 {
		return ErrSubjectInUse
	}

	affected, err := s.subjectRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if affected == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// SeedDefaultSubjects inserts the default subject set for a user. Duplicate
// rows are treated as success so the seed can run on every login; inserts
// are not atomic, so a partial failure leaves a partial set.
func (s *AcademicService) SeedDefaultSubjects(userID int64) error {
	for _, name := range models.DefaultSubjects {
		if _, err := s.subjectRepo.Create(userID, name); err != nil {
			if s.dup != nil && s.dup(err) {
				continue
			}
			return fmt.Errorf("failed to seed subject %s: %w", name, err)
		}
		log.Printf("Seeded default subject %q for user %d", name, userID)
	}
	return nil
}
