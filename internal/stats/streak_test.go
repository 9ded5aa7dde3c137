package stats

import (
	"testing"

	"github.com/AnayLodha/kairo/internal/models"
)

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name        string
		prev        *models.UserStreak
		today       string
		wantCurrent int
		wantLongest int
		wantChanged bool
	}{
		{
			name:        "first ever check-in",
			prev:        nil,
			today:       "2025-06-15",
			wantCurrent: 1,
			wantLongest: 1,
			wantChanged: true,
		},
		{
			name: "consecutive day extends streak",
			prev: &models.UserStreak{
				CurrentStreak:  3,
				LongestStreak:  5,
				LastActiveDate: "2025-06-14",
			},
			today:       "2025-06-15",
			wantCurrent: 4,
			wantLongest: 5,
			wantChanged: true,
		},
		{
			name: "new longest follows the current streak",
			prev: &models.UserStreak{
				CurrentStreak:  5,
				LongestStreak:  5,
				LastActiveDate: "2025-06-14",
			},
			today:       "2025-06-15",
			wantCurrent: 6,
			wantLongest: 6,
			wantChanged: true,
		},
		{
			name: "same day is a no-op",
			prev: &models.UserStreak{
				CurrentStreak:  3,
				LongestStreak:  5,
				LastActiveDate: "2025-06-15",
			},
			today:       "2025-06-15",
			wantCurrent: 3,
			wantLongest: 5,
			wantChanged: false,
		},
		{
			name: "gap resets to one",
			prev: &models.UserStreak{
				CurrentStreak:  7,
				LongestStreak:  9,
				LastActiveDate: "2025-06-12",
			},
			today:       "2025-06-15",
			wantCurrent: 1,
			wantLongest: 9,
			wantChanged: true,
		},
		{
			name: "backdated clock resets to one",
			prev: &models.UserStreak{
				CurrentStreak:  4,
				LongestStreak:  4,
				LastActiveDate: "2025-06-16",
			},
			today:       "2025-06-15",
			wantCurrent: 1,
			wantLongest: 4,
			wantChanged: true,
		},
		{
			name: "unparseable stored date resets to one",
			prev: &models.UserStreak{
				CurrentStreak:  4,
				LongestStreak:  6,
				LastActiveDate: "not-a-date",
			},
			today:       "2025-06-15",
			wantCurrent: 1,
			wantLongest: 6,
			wantChanged: true,
		},
		{
			name: "record with empty last active date starts fresh",
			prev: &models.UserStreak{
				CurrentStreak:  0,
				LongestStreak:  0,
				LastActiveDate: "",
			},
			today:       "2025-06-15",
			wantCurrent: 1,
			wantLongest: 1,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NextStreak(tt.prev, tt.today)

			if changed != tt.wantChanged {
				t.Fatalf("NextStreak() changed = %v, want %v", changed, tt.wantChanged)
			}
			if got.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantCurrent)
			}
			if got.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", got.LongestStreak, tt.wantLongest)
			}
			if changed && got.LastActiveDate != tt.today {
				t.Errorf("LastActiveDate = %q, want %q", got.LastActiveDate, tt.today)
			}
			if got.LongestStreak < got.CurrentStreak {
				t.Errorf("LongestStreak %d dropped below CurrentStreak %d", got.LongestStreak, got.CurrentStreak)
			}
		})
	}
}

func TestNextStreakCarriesIdentity(t *testing.T) {
	prev := &models.UserStreak{
		ID:             42,
		UserID:         7,
		CurrentStreak:  2,
		LongestStreak:  2,
		LastActiveDate: "2025-06-14",
	}

	got, changed := NextStreak(prev, "2025-06-15")
	if !changed {
		t.Fatal("expected a write")
	}
	if got.ID != 42 || got.UserID != 7 {
		t.Errorf("identity = (%d, %d), want (42, 7)", got.ID, got.UserID)
	}
}
