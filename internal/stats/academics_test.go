package stats

import (
	"testing"

	"github.com/AnayLodha/kairo/internal/models"
)

func mark(subject string, obtained, max float64, date string) models.AcademicMark {
	return models.AcademicMark{
		Subject:       subject,
		MarksObtained: obtained,
		MaxMarks:      max,
		Date:          date,
	}
}

func TestSubjectAverages(t *testing.T) {
	tests := []struct {
		name         string
		marks        []models.AcademicMark
		subjectNames []string
		want         []SubjectAverage
	}{
		{
			name:         "no marks and no subjects",
			marks:        nil,
			subjectNames: nil,
			want:         []SubjectAverage{},
		},
		{
			name:         "subject with no marks gets nil average",
			marks:        nil,
			subjectNames: []string{"Physics"},
			want: []SubjectAverage{
				{Subject: "Physics", Average: nil, Trend: TrendNeutral},
			},
		},
		{
			name: "single mark",
			marks: []models.AcademicMark{
				mark("Physics", 45, 50, "2025-04-10"),
			},
			subjectNames: []string{"Physics"},
			want: []SubjectAverage{
				{Subject: "Physics", Average: intPtr(90), Trend: TrendNeutral},
			},
		},
		{
			name: "average rounds to nearest integer",
			marks: []models.AcademicMark{
				mark("Maths", 70, 100, "2025-04-10"),
				mark("Maths", 75, 100, "2025-05-10"),
			},
			subjectNames: []string{"Maths"},
			want: []SubjectAverage{
				// (70 + 75) / 2 = 72.5 rounds to 73
				{Subject: "Maths", Average: intPtr(73), Trend: TrendUp},
			},
		},
		{
			name: "declining marks trend down",
			marks: []models.AcademicMark{
				mark("Chemistry", 80, 100, "2025-04-10"),
				mark("Chemistry", 60, 100, "2025-06-10"),
			},
			subjectNames: []string{"Chemistry"},
			want: []SubjectAverage{
				{Subject: "Chemistry", Average: intPtr(70), Trend: TrendDown},
			},
		},
		{
			name: "equal latest percentages trend neutral",
			marks: []models.AcademicMark{
				mark("English", 40, 50, "2025-04-10"),
				mark("English", 80, 100, "2025-06-10"),
			},
			subjectNames: []string{"English"},
			want: []SubjectAverage{
				{Subject: "English", Average: intPtr(80), Trend: TrendNeutral},
			},
		},
		{
			name: "explicit subject list takes precedence over marks",
			marks: []models.AcademicMark{
				mark("History", 90, 100, "2025-04-10"),
			},
			subjectNames: []string{"Physics"},
			want: []SubjectAverage{
				{Subject: "Physics", Average: nil, Trend: TrendNeutral},
			},
		},
		{
			name: "subjects inferred from marks in first-appearance order",
			marks: []models.AcademicMark{
				mark("Physics", 40, 50, "2025-04-10"),
				mark("Maths", 90, 100, "2025-04-11"),
				mark("Physics", 45, 50, "2025-04-12"),
			},
			subjectNames: nil,
			want: []SubjectAverage{
				{Subject: "Physics", Average: intPtr(85), Trend: TrendUp},
				{Subject: "Maths", Average: intPtr(90), Trend: TrendNeutral},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubjectAverages(tt.marks, tt.subjectNames)
			if len(got) != len(tt.want) {
				t.Fatalf("SubjectAverages() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Subject != tt.want[i].Subject {
					t.Errorf("entry %d subject = %q, want %q", i, got[i].Subject, tt.want[i].Subject)
				}
				if !intPtrEqual(got[i].Average, tt.want[i].Average) {
					t.Errorf("entry %d average = %v, want %v", i, intPtrString(got[i].Average), intPtrString(tt.want[i].Average))
				}
				if got[i].Trend != tt.want[i].Trend {
					t.Errorf("entry %d trend = %q, want %q", i, got[i].Trend, tt.want[i].Trend)
				}
			}
		})
	}
}

func TestMarkTrendTiesKeepInputOrder(t *testing.T) {
	// Two marks on the same date: the stable sort keeps their relative
	// order, so the first one in the slice is treated as latest.
	marks := []models.AcademicMark{
		mark("Physics", 50, 100, "2025-04-10"),
		mark("Physics", 90, 100, "2025-04-10"),
	}

	if got := markTrend(marks); got != TrendDown {
		t.Errorf("markTrend() = %q, want %q", got, TrendDown)
	}
}

func TestOverallAverage(t *testing.T) {
	tests := []struct {
		name  string
		marks []models.AcademicMark
		want  *int
	}{
		{
			name:  "no marks",
			marks: nil,
			want:  nil,
		},
		{
			name: "single mark",
			marks: []models.AcademicMark{
				mark("Physics", 45, 50, "2025-04-10"),
			},
			want: intPtr(90),
		},
		{
			name: "mean of percentages not weighted by max marks",
			marks: []models.AcademicMark{
				mark("Physics", 10, 10, "2025-04-10"),   // 100%
				mark("Maths", 50, 100, "2025-04-11"),    // 50%
				mark("English", 30, 40, "2025-04-12"),   // 75%
			},
			want: intPtr(75),
		},
		{
			name: "rounds half up",
			marks: []models.AcademicMark{
				mark("Physics", 80, 100, "2025-04-10"),
				mark("Maths", 73, 100, "2025-04-11"),
			},
			// 76.5 rounds to 77
			want: intPtr(77),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallAverage(tt.marks)
			if !intPtrEqual(got, tt.want) {
				t.Errorf("OverallAverage() = %v, want %v", intPtrString(got), intPtrString(tt.want))
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrString(v *int) interface{} {
	if v == nil {
		return "nil"
	}
	return *v
}
