package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// StreakRepository handles streak record database operations
type StreakRepository struct {
	db *database.DB
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(db *database.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// Get retrieves the user's streak record, or nil before the first check-in
func (r *StreakRepository) Get(userID int64) (*models.UserStreak, error) {
	query := `
		SELECT id, user_id, current_streak, longest_streak, COALESCE(last_active_date, ''), updated_at
		FROM user_streaks
		WHERE user_id = ?
	`
	s := &models.UserStreak{}
	err := r.db.QueryRow(query, userID).Scan(&s.ID, &s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.LastActiveDate, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	return s, nil
}

// Upsert writes the streak record keyed on user_id alone. Last writer wins;
// there is no optimistic concurrency token.
func (r *StreakRepository) Upsert(userID int64, streak models.UserStreak) (*models.UserStreak, error) {
	query := strings.Join([]string{
		"INSERT INTO user_streaks (user_id, current_streak, longest_streak, last_active_date, updated_at) VALUES (?, ?, ?, ?, ?)",
		r.db.Dialect.UpsertClause(
			[]string{"user_id"},
			[]string{"current_streak", "longest_streak", "last_active_date", "updated_at"},
		),
	}, " ")

	_, err := r.db.Exec(query, userID, streak.CurrentStreak, streak.LongestStreak, streak.LastActiveDate, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert streak: %w", err)
	}

	return r.Get(userID)
}
