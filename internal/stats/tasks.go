package stats

import (
	"math"

	"github.com/AnayLodha/kairo/internal/models"
)

// CompletionRate returns the percentage of completed tasks, rounded to the
// nearest integer. An empty task list reports 0, not absent.
func CompletionRate(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}
