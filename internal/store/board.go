package store

import (
	"log/slog"

	"github.com/campusconnect/board/internal/models"
	"github.com/campusconnect/board/internal/query"
	"github.com/campusconnect/board/internal/storage"
	"github.com/campusconnect/board/internal/util"
)

// Board wires the post and session stores into the single surface the view
// layer talks to. Both stores share one storage provider, injected at
// construction.
type Board struct {
	Posts   *PostStore
	Session *SessionStore
}

func NewBoard(prov storage.Provider, clock util.Clock, log *slog.Logger) *Board {
	return &Board{
		Posts:   NewPostStore(prov, clock, log),
		Session: NewSessionStore(prov, log),
	}
}

// Initialize loads both stores, called once at application start.
func (b *Board) Initialize() {
	b.Posts.Initialize()
	b.Session.Initialize()
}

// CreatePost stamps the draft with the current identity when the draft does
// not name an author itself.
func (b *Board) CreatePost(d Draft) models.Post {
	if d.AuthorName == "" {
		if u, ok := b.Session.Current(); ok {
			d.AuthorName = u.Name
		}
	}
	return b.Posts.Create(d)
}

func (b *Board) LikePost(id int64) {
	b.Posts.Like(id)
}

func (b *Board) FilterPosts(term string, category models.Category) []models.Post {
	return query.Filter(b.Posts.All(), term, category)
}

func (b *Board) Login(email, password string) models.User {
	return b.Session.Login(email, password)
}

func (b *Board) Register(name, email, major, password, confirm string) (models.User, error) {
	return b.Session.Register(name, email, major, password, confirm)
}

func (b *Board) EditProfile(name, major, bio, rawSkills, rawInterests string) {
	b.Session.EditProfile(name, major, bio, rawSkills, rawInterests)
}

// Logout clears the identity and resets the board to the sample posts. The
// post reset is deliberate: a fresh visitor always sees the seed feed.
func (b *Board) Logout() {
	b.Session.Logout()
	b.Posts.Reset()
}
