package models

import "time"

// UserStreak tracks consecutive active days. Exactly one row per user;
// LastActiveDate is a YYYY-MM-DD string, empty before the first check-in.
// Invariant: LongestStreak >= CurrentStreak.
type UserStreak struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	LastActiveDate string    `json:"last_active_date"`
	UpdatedAt      time.Time `json:"updated_at"`
}
