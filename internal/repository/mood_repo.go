package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// MoodRepository handles mood check-in database operations
type MoodRepository struct {
	db *database.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *database.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// ListRecent retrieves a user's most recent entries, newest first
func (r *MoodRepository) ListRecent(userID int64, limit int) ([]models.MoodEntry, error) {
	query := `
		SELECT id, user_id, mood, energy_level, date, created_at
		FROM mood_entries
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.EnergyLevel, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetByDate retrieves the entry for one calendar day, or nil
func (r *MoodRepository) GetByDate(userID int64, date string) (*models.MoodEntry, error) {
	query := `
		SELECT id, user_id, mood, energy_level, date, created_at
		FROM mood_entries
		WHERE user_id = ? AND date = ?
	`
	e := &models.MoodEntry{}
	err := r.db.QueryRow(query, userID, date).Scan(&e.ID, &e.UserID, &e.Mood, &e.EnergyLevel, &e.Date, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return e, nil
}

// Upsert inserts or overwrites the entry for (user, date). At most one row
// per pair ever exists; a second save on the same day replaces the first.
func (r *MoodRepository) Upsert(userID int64, mood string, energyLevel int, date string) (*models.MoodEntry, error) {
	query := strings.Join([]string{
		"INSERT INTO mood_entries (user_id, mood, energy_level, date) VALUES (?, ?, ?, ?)",
		r.db.Dialect.UpsertClause(
			[]string{"user_id", "date"},
			[]string{"mood", "energy_level"},
		),
	}, " ")

	if _, err := r.db.Exec(query, userID, mood, energyLevel, date); err != nil {
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}

	return r.GetByDate(userID, date)
}
