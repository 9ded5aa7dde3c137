package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// ReflectionRepository handles daily reflection database operations
type ReflectionRepository struct {
	db *database.DB
}

// NewReflectionRepository creates a new reflection repository
func NewReflectionRepository(db *database.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// ListRecent retrieves a user's most recent reflections, newest first
func (r *ReflectionRepository) ListRecent(userID int64, limit int) ([]models.Reflection, error) {
	query := `
		SELECT id, user_id, content, date, created_at
		FROM daily_reflections
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reflections: %w", err)
	}
	defer rows.Close()

	var reflections []models.Reflection
	for rows.Next() {
		var ref models.Reflection
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.Content, &ref.Date, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reflection: %w", err)
		}
		reflections = append(reflections, ref)
	}

	return reflections, rows.Err()
}

// GetByDate retrieves the reflection for one calendar day, or nil
func (r *ReflectionRepository) GetByDate(userID int64, date string) (*models.Reflection, error) {
	query := `
		SELECT id, user_id, content, date, created_at
		FROM daily_reflections
		WHERE user_id = ? AND date = ?
	`
	ref := &models.Reflection{}
	err := r.db.QueryRow(query, userID, date).Scan(&ref.ID, &ref.UserID, &ref.Content, &ref.Date, &ref.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reflection: %w", err)
	}
	return ref, nil
}

// Upsert inserts or overwrites the reflection for (user, date)
func (r *ReflectionRepository) Upsert(userID int64, content, date string) (*models.Reflection, error) {
	query := strings.Join([]string{
		"INSERT INTO daily_reflections (user_id, content, date) VALUES (?, ?, ?)",
		r.db.Dialect.UpsertClause(
			[]string{"user_id", "date"},
			[]string{"content"},
		),
	}, " ")

	if _, err := r.db.Exec(query, userID, content, date); err != nil {
		return nil, fmt.Errorf("failed to upsert reflection: %w", err)
	}

	return r.GetByDate(userID, date)
}
