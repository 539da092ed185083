package models

import "strings"

type Category string

const (
	CategoryProject  Category = "project"
	CategoryStudy    Category = "study"
	CategoryResource Category = "resource"
	CategoryEvent    Category = "event"
)

// Categories lists the known post categories in display order. The set is
// open: a post may carry a category outside this list.
func Categories() []Category {
	return []Category{CategoryProject, CategoryStudy, CategoryResource, CategoryEvent}
}

type Post struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Category       Category `json:"category"`
	Content        string   `json:"content"`
	Tags           []string `json:"tags"`
	Author         string   `json:"author"`
	AuthorInitials string   `json:"authorInitials"`
	Date           string   `json:"date"`
	Likes          int      `json:"likes"`
	Comments       int      `json:"comments"`
}

// SplitList turns a comma-separated raw string into trimmed non-empty items.
// Tags, skills and interests all derive from user input this way.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Initials builds avatar initials from the first rune of each
// whitespace-separated name token. An empty name yields the anonymous
// placeholder "A".
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "A"
	}
	var b strings.Builder
	for _, f := range fields {
		b.WriteRune([]rune(f)[0])
	}
	return b.String()
}
