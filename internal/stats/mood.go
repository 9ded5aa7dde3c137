package stats

import (
	"math"

	"github.com/AnayLodha/kairo/internal/models"
)

// WeeklyEnergy averages the energy levels of entries dated within the 7-day
// window ending at today (today plus the preceding 6 days), rounded to one
// decimal place. Nil when no entries fall in the window.
func WeeklyEnergy(entries []models.MoodEntry, today string) *float64 {
	window := make(map[string]bool)
	for _, day := range LastNDays(today, 7) {
		window[day] = true
	}

	sum, count := 0, 0
	for _, e := range entries {
		if window[e.Date] {
			sum += e.EnergyLevel
			count++
		}
	}
	if count == 0 {
		return nil
	}

	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &avg
}

// TodayEntry returns the entry dated today, or nil
func TodayEntry(entries []models.MoodEntry, today string) *models.MoodEntry {
	for i := range entries {
		if entries[i].Date == today {
			return &entries[i]
		}
	}
	return nil
}
