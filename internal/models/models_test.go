package models

import (
	"testing"
	"time"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "future expiry",
			expiresAt: time.Now().Add(1 * time.Hour),
			want:      false,
		},
		{
			name:      "past expiry",
			expiresAt: time.Now().Add(-1 * time.Hour),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ID: "abc", ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordResetTokenIsExpired(t *testing.T) {
	valid := PasswordResetToken{Token: "t", ExpiresAt: time.Now().Add(30 * time.Minute)}
	if valid.IsExpired() {
		t.Error("token with future expiry reported as expired")
	}

	expired := PasswordResetToken{Token: "t", ExpiresAt: time.Now().Add(-1 * time.Minute)}
	if !expired.IsExpired() {
		t.Error("token with past expiry reported as valid")
	}
}

func TestAcademicMarkPercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      float64
		want     float64
	}{
		{name: "full marks", obtained: 50, max: 50, want: 100},
		{name: "half marks", obtained: 25, max: 50, want: 50},
		{name: "fractional", obtained: 42.5, max: 50, want: 85},
		{name: "above max", obtained: 55, max: 50, want: 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := AcademicMark{MarksObtained: tt.obtained, MaxMarks: tt.max}
			if got := m.Percentage(); got != tt.want {
				t.Errorf("Percentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidExamType(t *testing.T) {
	for _, examType := range ExamTypes {
		if !IsValidExamType(examType) {
			t.Errorf("IsValidExamType(%q) = false, want true", examType)
		}
	}

	for _, examType := range []string{"", "ut1", "Midterm"} {
		if IsValidExamType(examType) {
			t.Errorf("IsValidExamType(%q) = true, want false", examType)
		}
	}
}

func TestIsValidMood(t *testing.T) {
	for _, mood := range Moods {
		if !IsValidMood(mood) {
			t.Errorf("IsValidMood(%q) = false, want true", mood)
		}
	}

	for _, mood := range []string{"", "Happy", "angry"} {
		if IsValidMood(mood) {
			t.Errorf("IsValidMood(%q) = true, want false", mood)
		}
	}
}

func TestIsValidIdeaCategory(t *testing.T) {
	for _, category := range IdeaCategories {
		if !IsValidIdeaCategory(category) {
			t.Errorf("IsValidIdeaCategory(%q) = false, want true", category)
		}
	}

	for _, category := range []string{"", "game dev", "Music"} {
		if IsValidIdeaCategory(category) {
			t.Errorf("IsValidIdeaCategory(%q) = true, want false", category)
		}
	}
}
