package repository

import (
	"fmt"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// TaskRepository handles daily task database operations
type TaskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByDate retrieves a user's tasks for one calendar day, oldest first
func (r *TaskRepository) ListByDate(userID int64, date string) ([]models.Task, error) {
	query := `
		SELECT id, user_id, title, completed, date, created_at
		FROM daily_tasks
		WHERE user_id = ? AND date = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Create inserts a new task
func (r *TaskRepository) Create(userID int64, title, date string) (*models.Task, error) {
	query := `
		INSERT INTO daily_tasks (user_id, title, date)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, title, date)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return r.GetByID(id, userID)
}

// GetByID retrieves one of the user's tasks
func (r *TaskRepository) GetByID(id, userID int64) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, completed, date, created_at
		FROM daily_tasks
		WHERE id = ? AND user_id = ?
	`
	t := &models.Task{}
	err := r.db.QueryRow(query, id, userID).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// SetCompleted updates the completion flag of a user's task. Returns the
// number of rows affected so callers can detect a missing or foreign row.
func (r *TaskRepository) SetCompleted(id, userID int64, completed bool) (int64, error) {
	query := "UPDATE daily_tasks SET completed = ? WHERE id = ? AND user_id = ?"
	result, err := r.db.Exec(query, completed, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}
	return result.RowsAffected()
}

// Delete removes a user's task
func (r *TaskRepository) Delete(id, userID int64) (int64, error) {
	query := "DELETE FROM daily_tasks WHERE id = ? AND user_id = ?"
	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}
	return result.RowsAffected()
}
