package service

import (
	"errors"
	"fmt"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/stats"
	"github.com/AnayLodha/kairo/internal/validation"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles daily task business logic
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// DayTasks holds one day's tasks plus the derived completion rate
type DayTasks struct {
	Tasks          []models.Task `json:"tasks"`
	CompletionRate int           `json:"completion_rate"`
}

// ListDay returns a user's tasks for one calendar day with the completion
// rate derived from them. An empty day reports rate 0.
func (s *TaskService) ListDay(userID int64, date string) (*DayTasks, error) {
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &DayTasks{
		Tasks:          tasks,
		CompletionRate: stats.CompletionRate(tasks),
	}, nil
}

// Add creates a task for the given day
func (s *TaskService) Add(userID int64, title, date string) (*models.Task, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Create(userID, title, date)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	return task, nil
}

// Toggle sets a task's completion flag
func (s *TaskService) Toggle(id, userID int64, completed bool) (*models.Task, error) {
	affected, err := s.taskRepo.SetCompleted(id, userID, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}
	if affected == 0 {
		return nil, ErrTaskNotFound
	}
	return s.taskRepo.GetByID(id, userID)
}

// Delete removes a task
func (s *TaskService) Delete(id, userID int64) error {
	affected, err := s.taskRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
