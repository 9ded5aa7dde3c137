package stats

import (
	"testing"

	"github.com/AnayLodha/kairo/internal/models"
)

func entry(date string, energy int) models.MoodEntry {
	return models.MoodEntry{Date: date, EnergyLevel: energy}
}

func TestWeeklyEnergy(t *testing.T) {
	today := "2025-06-15"

	tests := []struct {
		name    string
		entries []models.MoodEntry
		want    *float64
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    nil,
		},
		{
			name: "entries outside the window are ignored",
			entries: []models.MoodEntry{
				entry("2025-06-01", 5),
				entry("2025-06-08", 5), // 7 days before today, outside
			},
			want: nil,
		},
		{
			name: "single entry today",
			entries: []models.MoodEntry{
				entry("2025-06-15", 4),
			},
			want: floatPtr(4.0),
		},
		{
			name: "window spans today and six preceding days",
			entries: []models.MoodEntry{
				entry("2025-06-09", 2), // oldest day still inside
				entry("2025-06-15", 4),
			},
			want: floatPtr(3.0),
		},
		{
			name: "average rounds to one decimal",
			entries: []models.MoodEntry{
				entry("2025-06-13", 3),
				entry("2025-06-14", 3),
				entry("2025-06-15", 4),
			},
			// 10/3 = 3.333... rounds to 3.3
			want: floatPtr(3.3),
		},
		{
			name: "future entries are ignored",
			entries: []models.MoodEntry{
				entry("2025-06-16", 5),
				entry("2025-06-15", 3),
			},
			want: floatPtr(3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyEnergy(tt.entries, today)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("WeeklyEnergy() = %v, want %v", floatPtrString(got), floatPtrString(tt.want))
			}
			if got != nil && *got != *tt.want {
				t.Errorf("WeeklyEnergy() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestTodayEntry(t *testing.T) {
	entries := []models.MoodEntry{
		entry("2025-06-15", 4),
		entry("2025-06-14", 2),
	}

	t.Run("found", func(t *testing.T) {
		got := TodayEntry(entries, "2025-06-14")
		if got == nil || got.EnergyLevel != 2 {
			t.Errorf("TodayEntry() = %v, want entry with energy 2", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if got := TodayEntry(entries, "2025-06-13"); got != nil {
			t.Errorf("TodayEntry() = %v, want nil", got)
		}
	})
}

func floatPtr(v float64) *float64 { return &v }

func floatPtrString(v *float64) interface{} {
	if v == nil {
		return "nil"
	}
	return *v
}
