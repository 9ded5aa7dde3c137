package models

import "time"

// Moods are the recognized mood values for a daily check-in
var Moods = []string{
	"happy",
	"calm",
	"neutral",
	"low",
	"stressed",
}

// MoodEntry is a daily mood check-in. At most one row exists per
// (user, date); saves go through an upsert keyed on that pair.
type MoodEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Mood        string    `json:"mood"`
	EnergyLevel int       `json:"energy_level"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsValidMood reports whether mood is one of the recognized values
func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Reflection is a free-text daily journal entry, at most one per (user, date)
type Reflection struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
