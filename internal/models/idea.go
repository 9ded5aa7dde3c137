package models

import "time"

// IdeaCategories are the recognized creative idea categories
var IdeaCategories = []string{
	"Game Dev",
	"AI Project",
	"Design",
	"MUN Speech",
	"Other",
}

// CreativeIdea is a captured idea. Note and Category are optional;
// ideas are not date-scoped.
type CreativeIdea struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Note      string    `json:"note,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidIdeaCategory reports whether category is one of the recognized values
func IsValidIdeaCategory(category string) bool {
	for _, c := range IdeaCategories {
		if c == category {
			return true
		}
	}
	return false
}
