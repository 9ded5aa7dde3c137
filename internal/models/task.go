package models

import "time"

// Task is a to-do item scoped to a single calendar day.
// Date is a YYYY-MM-DD string, not a timestamp.
type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
