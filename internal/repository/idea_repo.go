package repository

import (
	"fmt"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/models"
)

// IdeaRepository handles creative idea database operations
type IdeaRepository struct {
	db *database.DB
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *database.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// ListByUser retrieves a user's ideas, newest first
func (r *IdeaRepository) ListByUser(userID int64) ([]models.CreativeIdea, error) {
	query := `
		SELECT id, user_id, title, COALESCE(note, ''), COALESCE(category, ''), created_at
		FROM creative_ideas
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	var ideas []models.CreativeIdea
	for rows.Next() {
		var idea models.CreativeIdea
		if err := rows.Scan(&idea.ID, &idea.UserID, &idea.Title, &idea.Note, &idea.Category, &idea.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	return ideas, rows.Err()
}

// Create inserts a new idea
func (r *IdeaRepository) Create(userID int64, title, note, category string) (*models.CreativeIdea, error) {
	query := `
		INSERT INTO creative_ideas (user_id, title, note, category)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, title, note, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	idea := &models.CreativeIdea{}
	getQuery := `
		SELECT id, user_id, title, COALESCE(note, ''), COALESCE(category, ''), created_at
		FROM creative_ideas
		WHERE id = ?
	`
	err = r.db.QueryRow(getQuery, id).Scan(&idea.ID, &idea.UserID, &idea.Title, &idea.Note, &idea.Category, &idea.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return idea, nil
}

// Delete removes a user's idea
func (r *IdeaRepository) Delete(id, userID int64) (int64, error) {
	query := "DELETE FROM creative_ideas WHERE id = ? AND user_id = ?"
	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete idea: %w", err)
	}
	return result.RowsAffected()
}
