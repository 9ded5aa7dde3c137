// Package stats derives dashboard statistics from fetched rows: subject
// averages and trends, task completion rate, weekly energy, score bands,
// and the daily streak transition. Everything here is pure; callers pass
// in the rows and the current calendar day.
package stats

import "time"

// DateLayout is the calendar-day format used across the data model
const DateLayout = "2006-01-02"

// dayDiff returns the whole-day difference today-other. ok is false when
// either string is not a valid calendar day.
func dayDiff(today, other string) (int, bool) {
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0, false
	}
	o, err := time.Parse(DateLayout, other)
	if err != nil {
		return 0, false
	}
	return int(t.Sub(o) / (24 * time.Hour)), true
}

// LastNDays returns today and the n-1 preceding calendar days
func LastNDays(today string, n int) []string {
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return nil
	}
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, t.AddDate(0, 0, -i).Format(DateLayout))
	}
	return days
}
