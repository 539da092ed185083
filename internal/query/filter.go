package query

import (
	"strings"

	"github.com/campusconnect/board/internal/models"
)

// Filter returns the posts matching a free-text term and an optional
// category. The term matches case-insensitively as a substring of the title,
// the content or any tag; the category must match exactly. An empty term or
// category matches everything. Input order is preserved and the input slice
// is never modified.
func Filter(posts []models.Post, term string, category models.Category) []models.Post {
	term = strings.ToLower(term)
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if matchesTerm(p, term) && matchesCategory(p, category) {
			out = append(out, p)
		}
	}
	return out
}

func matchesTerm(p models.Post, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesCategory(p models.Post, category models.Category) bool {
	return category == "" || p.Category == category
}
