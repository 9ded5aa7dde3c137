package service

import (
	"fmt"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/stats"
	"github.com/AnayLodha/kairo/internal/validation"
)

// StreakService handles the daily streak lifecycle
type StreakService struct {
	streakRepo *repository.StreakRepository
	taskRepo   *repository.TaskRepository
}

// NewStreakService creates a new streak service
func NewStreakService(streakRepo *repository.StreakRepository, taskRepo *repository.TaskRepository) *StreakService {
	return &StreakService{
		streakRepo: streakRepo,
		taskRepo:   taskRepo,
	}
}

// Get returns the user's streak record, zero-valued before the first
// check-in
func (s *StreakService) Get(userID int64) (*models.UserStreak, error) {
	streak, err := s.streakRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &models.UserStreak{UserID: userID}, nil
	}
	return streak, nil
}

// CheckIn advances the streak for today if the day qualifies: at least one
// task exists and at least one is completed. A non-qualifying day, or a
// repeat call on an already-counted day, returns the current record with
// no write. Persistence is an upsert keyed on the user; last writer wins.
func (s *StreakService) CheckIn(userID int64, today string) (*models.UserStreak, error) {
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByDate(userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	qualifies := false
	for _, t := range tasks {
		if t.Completed {
			qualifies = true
			break
		}
	}
	if len(tasks) == 0 || !qualifies {
		return s.Get(userID)
	}

	prev, err := s.streakRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	next, changed := stats.NextStreak(prev, today)
	if !changed {
		return prev, nil
	}

	saved, err := s.streakRepo.Upsert(userID, next)
	if err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}
	return saved, nil
}
