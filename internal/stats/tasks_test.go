package stats

import (
	"testing"

	"github.com/AnayLodha/kairo/internal/models"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  int
	}{
		{
			name:  "empty day reports zero",
			tasks: nil,
			want:  0,
		},
		{
			name: "none completed",
			tasks: []models.Task{
				{Title: "a"}, {Title: "b"},
			},
			want: 0,
		},
		{
			name: "all completed",
			tasks: []models.Task{
				{Title: "a", Completed: true},
				{Title: "b", Completed: true},
			},
			want: 100,
		},
		{
			name: "one of three rounds to 33",
			tasks: []models.Task{
				{Title: "a", Completed: true},
				{Title: "b"},
				{Title: "c"},
			},
			want: 33,
		},
		{
			name: "two of three rounds to 67",
			tasks: []models.Task{
				{Title: "a", Completed: true},
				{Title: "b", Completed: true},
				{Title: "c"},
			},
			want: 67,
		},
		{
			name: "half rounds up",
			tasks: []models.Task{
				{Title: "a", Completed: true},
				{Title: "b"},
				{Title: "c", Completed: true},
				{Title: "d"},
				{Title: "e", Completed: true},
				{Title: "f"},
				{Title: "g", Completed: true},
				{Title: "h"},
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.tasks); got != tt.want {
				t.Errorf("CompletionRate() = %d, want %d", got, tt.want)
			}
		})
	}
}
