package repository

import (
	"fmt"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// AcademicRepository handles exam mark database operations
type AcademicRepository struct {
	db *database.DB
}

// NewAcademicRepository creates a new academic repository
func NewAcademicRepository(db *database.DB) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// ListByUser retrieves all of a user's marks, oldest first
func (r *AcademicRepository) ListByUser(userID int64) ([]models.AcademicMark, error) {
	query := `
		SELECT id, user_id, subject, exam_type, marks_obtained, max_marks, date, created_at
		FROM academic_marks
		WHERE user_id = ?
		ORDER BY date ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query marks: %w", err)
	}
	defer rows.Close()

	var marks []models.AcademicMark
	for rows.Next() {
		var m models.AcademicMark
		if err := rows.Scan(&m.ID, &m.UserID, &m.Subject, &m.ExamType, &m.MarksObtained, &m.MaxMarks, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}

// Create inserts a new mark
func (r *AcademicRepository) Create(userID int64, subject, examType string, marksObtained, maxMarks float64, date string) (*models.AcademicMark, error) {
	query := `
		INSERT INTO academic_marks (user_id, subject, exam_type, marks_obtained, max_marks, date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, subject, examType, marksObtained, maxMarks, date)
	if err != nil {
		return nil, fmt.Errorf("failed to create mark: %w", err)
	}

	mark := &models.AcademicMark{}
	getQuery := `
		SELECT id, user_id, subject, exam_type, marks_obtained, max_marks, date, created_at
		FROM academic_marks
		WHERE id = ?
	`
	err = r.db.QueryRow(getQuery, id).Scan(&mark.ID, &mark.UserID, &mark.Subject, &mark.ExamType, &mark.MarksObtained, &mark.MaxMarks, &mark.Date, &mark.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get mark: %w", err)
	}

	return mark, nil
}

// Delete removes a user's mark
func (r *AcademicRepository) Delete(id, userID int64) (int64, error) {
	query := "DELETE FROM academic_marks WHERE id = ? AND user_id = ?"
	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete mark: %w", err)
	}
	return result.RowsAffected()
}

// CountBySubject returns how many of a user's marks reference a subject name
func (r *AcademicRepository) CountBySubject(userID int64, subject string) (int, error) {
	query := "SELECT COUNT(*) FROM academic_marks WHERE user_id = ? AND subject = ?"
	var count int
	if err := r.db.QueryRow(query, userID, subject).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count marks: %w", err)
	}
	return count, nil
}
