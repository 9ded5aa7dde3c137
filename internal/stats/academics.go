package stats

import (
	"math"
	"sort"

	"github.com/AnayLodha/kairo/internal/models"
)

// Trend classifies the direction of a subject's two most recent marks
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// SubjectAverage is the derived standing of one subject. Average is nil
// when the subject has no marks.
type SubjectAverage struct {
	Subject string `json:"subject"`
	Average *int   `json:"average"`
	Trend   Trend  `json:"trend"`
}

// SubjectAverages computes the average percentage and trend per subject.
// An explicit subjectNames list takes precedence; otherwise the unique
// subjects present in marks are used, in first-appearance order.
func SubjectAverages(marks []models.AcademicMark, subjectNames []string) []SubjectAverage {
	subjects := subjectNames
	if len(subjects) == 0 {
		subjects = uniqueSubjects(marks)
	}

	averages := make([]SubjectAverage, 0, len(subjects))
	for _, subject := range subjects {
		var subjectMarks []models.AcademicMark
		for _, m := range marks {
			if m.Subject == subject {
				subjectMarks = append(subjectMarks, m)
			}
		}

		if len(subjectMarks) == 0 {
			averages = append(averages, SubjectAverage{Subject: subject, Trend: TrendNeutral})
			continue
		}

		avg := roundedMeanPercentage(subjectMarks)
		averages = append(averages, SubjectAverage{
			Subject: subject,
			Average: &avg,
			Trend:   markTrend(subjectMarks),
		})
	}

	return averages
}

// OverallAverage is the mean of percentages across all marks regardless of
// subject, rounded to the nearest integer. This is a mean-of-percentages,
// not a marks-weighted sum/sum. Nil when there are no marks.
func OverallAverage(marks []models.AcademicMark) *int {
	if len(marks) == 0 {
		return nil
	}
	avg := roundedMeanPercentage(marks)
	return &avg
}

// markTrend compares the two most recent marks' percentages. Marks sharing
// a date keep their original relative order (stable sort).
func markTrend(subjectMarks []models.AcademicMark) Trend {
	if len(subjectMarks) < 2 {
		return TrendNeutral
	}

	sorted := make([]models.AcademicMark, len(subjectMarks))
	copy(sorted, subjectMarks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	latest := sorted[0].Percentage()
	previous := sorted[1].Percentage()
	switch {
	case latest > previous:
		return TrendUp
	case latest < previous:
		return TrendDown
	default:
		return TrendNeutral
	}
}

func roundedMeanPercentage(marks []models.AcademicMark) int {
	var sum float64
	for _, m := range marks {
		sum += m.Percentage()
	}
	return int(math.Round(sum / float64(len(marks))))
}

func uniqueSubjects(marks []models.AcademicMark) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, m := range marks {
		if !seen[m.Subject] {
			seen[m.Subject] = true
			subjects = append(subjects, m.Subject)
		}
	}
	return subjects
}
