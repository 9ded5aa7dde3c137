package repository

import (
	"database/sql"
	"fmt"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *database.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *database.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// ListByUser retrieves a user's subjects ordered by name
func (r *SubjectRepository) ListByUser(userID int64) ([]models.Subject, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM user_subjects
		WHERE user_id = ?
		ORDER BY name ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

// GetByID retrieves one of the user's subjects
func (r *SubjectRepository) GetByID(id, userID int64) (*models.Subject, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM user_subjects
		WHERE id = ? AND user_id = ?
	`
	s := &models.Subject{}
	err := r.db.QueryRow(query, id, userID).Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return s, nil
}

// Create inserts a new subject. The raw driver error is returned unwrapped
// so callers can recognize unique-constraint violations during seeding.
func (r *SubjectRepository) Create(userID int64, name string) (*models.Subject, error) {
	query := `
		INSERT INTO user_subjects (user_id, name)
		VALUES (?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, name)
	if err != nil {
		return nil, err
	}

	subject, err := r.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %d not found after insert", id)
	}
	return subject, nil
}

// Delete removes a user's subject
func (r *SubjectRepository) Delete(id, userID int64) (int64, error) {
	query := "DELETE FROM user_subjects WHERE id = ? AND user_id = ?"
	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete subject: %w", err)
	}
	return result.RowsAffected()
}
