package handlers

import (
	"net/http"

	"github.com/AnayLodha/kairo/internal/models"
	"github.com/AnayLodha/kairo/internal/service"
	"github.com/AnayLodha/kairo/internal/stats"
)

// DashboardHandler serves the combined overview the home screen renders
// from a single request
type DashboardHandler struct {
	taskService     *service.TaskService
	academicService *service.AcademicService
	journalService  *service.JournalService
	streakService   *service.StreakService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(taskService *service.TaskService, academicService *service.AcademicService, journalService *service.JournalService, streakService *service.StreakService) *DashboardHandler {
	return &DashboardHandler{
		taskService:     taskService,
		academicService: academicService,
		journalService:  journalService,
		streakService:   streakService,
	}
}

type dashboardResponse struct {
	Date           string             `json:"date"`
	Tasks          *service.DayTasks  `json:"tasks"`
	Streak         *models.UserStreak `json:"streak"`
	TodayMood      *models.MoodEntry  `json:"today_mood"`
	AvgEnergy      *float64           `json:"avg_energy"`
	OverallAverage *int               `json:"overall_average"`
	OverallBand    stats.Band         `json:"overall_band"`
}

// Overview aggregates today's tasks, streak, mood, and academic standing
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	today, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := h.taskService.ListDay(user.ID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading dashboard tasks", err)
		return
	}

	streak, err := h.streakService.Get(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading dashboard streak", err)
		return
	}

	mood, err := h.journalService.MoodOverview(user.ID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading dashboard mood", err)
		return
	}

	summary, err := h.academicService.Summarize(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error loading dashboard academics", err)
		return
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Date:           today,
		Tasks:          day,
		Streak:         streak,
		TodayMood:      mood.Today,
		AvgEnergy:      mood.AvgEnergy,
		OverallAverage: summary.OverallAverage,
		OverallBand:    summary.OverallBand,
	})
}
