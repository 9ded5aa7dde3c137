package service

import (
	"fmt"
	"strings"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/stats"
	"github.com/AnayLodha/kairo/internal/validation"
)

// historyLimit caps how many rows the history-bearing collections keep
// in view
const historyLimit = 30

// JournalService handles mood check-ins and daily reflections
type JournalService struct {
	moodRepo       *repository.MoodRepository
	reflectionRepo *repository.ReflectionRepository
}

// NewJournalService creates a new journal service
func NewJournalService(moodRepo *repository.MoodRepository, reflectionRepo *repository.ReflectionRepository) *JournalService {
	return &JournalService{
		moodRepo:       moodRepo,
		reflectionRepo: reflectionRepo,
	}
}

// MoodOverview holds recent entries plus the derived weekly summary
type MoodOverview struct {
	Entries   []models.MoodEntry `json:"entries"`
	Today     *models.MoodEntry  `json:"today"`
	AvgEnergy *float64           `json:"avg_energy"`
}

// MoodOverview returns the last 30 entries, today's entry if present, and
// the average energy over the 7-day window ending today.
func (s *JournalService) MoodOverview(userID int64, today string) (*MoodOverview, error) {
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.ListRecent(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	return &MoodOverview{
		Entries:   entries,
		Today:     stats.TodayEntry(entries, today),
		AvgEnergy: stats.WeeklyEnergy(entries, today),
	}, nil
}

// SaveMood upserts today's mood check-in. Saving twice on the same day
// overwrites the earlier entry.
func (s *JournalService) SaveMood(userID int64, mood string, energyLevel int, today string) (*models.MoodEntry, error) {
	if err := validation.ValidateMood(mood); err != nil {
		return nil, err
	}
	if err := validation.ValidateEnergyLevel(energyLevel); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	return s.moodRepo.Upsert(userID, mood, energyLevel, today)
}

// ReflectionOverview holds recent reflections plus today's if present
type ReflectionOverview struct {
	Reflections []models.Reflection `json:"reflections"`
	Today       *models.Reflection  `json:"today"`
}

// ReflectionOverview returns the last 30 reflections and today's
func (s *JournalService) ReflectionOverview(userID int64, today string) (*ReflectionOverview, error) {
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	reflections, err := s.reflectionRepo.ListRecent(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}

	overview := &ReflectionOverview{Reflections: reflections}
	for i := range reflections {
		if reflections[i].Date == today {
			overview.Today = &reflections[i]
			break
		}
	}
	return overview, nil
}

// SaveReflection upserts today's reflection
func (s *JournalService) SaveReflection(userID int64, content, today string) (*models.Reflection, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validation.ValidationError{Field: "content", Message: "content is required"}
	}
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	return s.reflectionRepo.Upsert(userID, content, today)
}
