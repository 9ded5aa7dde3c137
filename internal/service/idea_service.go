package service

import (
	"errors"
	"fmt"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/validation"
)

var ErrIdeaNotFound = errors.New("idea not found")

// IdeaService handles creative idea business logic
type IdeaService struct {
	ideaRepo *repository.IdeaRepository
}

// NewIdeaService creates a new idea service
func NewIdeaService(ideaRepo *repository.IdeaRepository) *IdeaService {
	return &IdeaService{ideaRepo: ideaRepo}
}

// List returns a user's ideas, newest first
func (s *IdeaService) List(userID int64) ([]models.CreativeIdea, error) {
	return s.ideaRepo.ListByUser(userID)
}

// Add captures a new idea. Note and category are optional.
func (s *IdeaService) Add(userID int64, title, note, category string) (*models.CreativeIdea, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := validation.ValidateIdeaCategory(category); err != nil {
		return nil, err
	}

	return s.ideaRepo.Create(userID, title, note, category)
}

// Delete removes an idea
func (s *IdeaService) Delete(id, userID int64) error {
	affected, err := s.ideaRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	if affected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}
