package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/campusconnect/board/internal/models"
)

var categoryColors = map[models.Category]*color.Color{
	models.CategoryProject:  color.New(color.FgCyan),
	models.CategoryStudy:    color.New(color.FgGreen),
	models.CategoryResource: color.New(color.FgYellow),
	models.CategoryEvent:    color.New(color.FgMagenta),
}

func categoryLabel(c models.Category) string {
	if cc, ok := categoryColors[c]; ok {
		return cc.Sprintf("[%s]", c)
	}
	return fmt.Sprintf("[%s]", c)
}

// Posts renders the feed as post cards, preserving the order it was given.
func Posts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts found. Try adjusting your search or filter criteria.")
		return
	}
	for _, p := range posts {
		title := color.New(color.Bold).Sprint(p.Title)
		fmt.Fprintf(w, "#%d %s %s\n", p.ID, categoryLabel(p.Category), title)
		fmt.Fprintf(w, "   %s (%s) on %s\n", p.Author, p.AuthorInitials, p.Date)
		fmt.Fprintf(w, "   %s\n", p.Content)
		if len(p.Tags) > 0 {
			fmt.Fprintf(w, "   tags: %s\n", strings.Join(p.Tags, ", "))
		}
		fmt.Fprintf(w, "   %d likes · %d comments\n\n", p.Likes, p.Comments)
	}
}

// Profile renders the current identity, or a login hint when there is none.
func Profile(w io.Writer, u models.User, loggedIn bool) {
	if !loggedIn {
		fmt.Fprintln(w, "Not logged in. Use 'login' or 'register' first.")
		return
	}
	fmt.Fprintf(w, "%s <%s>\n", color.New(color.Bold).Sprint(u.Name), u.Email)
	fmt.Fprintf(w, "major: %s\n", u.Major)
	if u.Bio != "" {
		fmt.Fprintf(w, "bio: %s\n", u.Bio)
	}
	fmt.Fprintf(w, "skills: %s\n", strings.Join(u.Skills, ", "))
	fmt.Fprintf(w, "interests: %s\n", strings.Join(u.Interests, ", "))
}
