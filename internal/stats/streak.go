package stats

import "github.com/AnayLodha/kairo/internal/models"

// NextStreak applies the daily streak transition and returns the record
// that should be persisted, plus whether a write is needed at all.
//
// prev is the stored record, nil before the first-ever check-in. A repeat
// call on the same calendar day is a no-op returning the record unchanged.
// A one-day difference extends the streak; anything else (a gap, an
// unparseable date, or a backdated clock) resets it to 1. The longest
// streak never decreases.
func NextStreak(prev *models.UserStreak, today string) (models.UserStreak, bool) {
	newStreak := 1
	newLongest := 1
	if prev != nil && prev.LongestStreak > 0 {
		newLongest = prev.LongestStreak
	}

	if prev != nil && prev.LastActiveDate != "" {
		diff, ok := dayDiff(today, prev.LastActiveDate)
		if ok {
			if diff == 0 {
				// Already checked in today
				return *prev, false
			}
			if diff == 1 {
				newStreak = prev.CurrentStreak + 1
			}
		}
	}

	if newStreak > newLongest {
		newLongest = newStreak
	}

	next := models.UserStreak{
		CurrentStreak:  newStreak,
		LongestStreak:  newLongest,
		LastActiveDate: today,
	}
	if prev != nil {
		next.ID = prev.ID
		next.UserID = prev.UserID
	}
	return next, true
}
