package store

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/campusconnect/board/internal/metrics"
	"github.com/campusconnect/board/internal/models"
	"github.com/campusconnect/board/internal/storage"
	"github.com/campusconnect/board/internal/util"
)

// Draft is unvalidated user input prior to becoming a persisted Post.
// Required-field validation happens in the view layer before Create is
// called.
type Draft struct {
	Title      string
	Category   models.Category
	Content    string
	RawTags    string
	AuthorName string
}

// PostStore is the sole owner of the post collection. Every read and write of
// persisted post data goes through it, and it persists after each mutation.
type PostStore struct {
	mu sync.RWMutex

	posts []models.Post
	prov  storage.Provider
	clock util.Clock
	log   *slog.Logger
}

func NewPostStore(prov storage.Provider, clock util.Clock, log *slog.Logger) *PostStore {
	return &PostStore{prov: prov, clock: clock, log: log}
}

// Initialize loads the persisted collection. Anything that prevents a load —
// no stored blob, an unreadable backend, bad JSON — degrades to seeding the
// sample posts and persisting them, so the collection is never empty and a
// first run is stable across reloads.
func (s *PostStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.prov.Get(storage.KeyPosts)
	if err == nil && ok {
		var posts []models.Post
		if err = json.Unmarshal([]byte(raw), &posts); err == nil {
			s.posts = posts
			return
		}
	}
	if err != nil {
		s.log.Warn("stored posts unusable, reseeding", "err", err)
		metrics.StorageLoadFailures.Inc()
	}
	s.seedLocked()
}

// Create assigns an id, initials, date and derived tags to the draft,
// prepends the resulting post and persists the collection.
func (s *PostStore) Create(d Draft) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.NowUtc()
	author := strings.TrimSpace(d.AuthorName)
	initials := models.Initials(author)
	if author == "" {
		author = "Anonymous"
	}

	post := models.Post{
		ID:             s.nextIDLocked(now),
		Title:          d.Title,
		Category:       d.Category,
		Content:        d.Content,
		Tags:           models.SplitList(d.RawTags),
		Author:         author,
		AuthorInitials: initials,
		Date:           now.Format("2006-01-02"),
	}
	s.posts = append([]models.Post{post}, s.posts...)
	s.persistLocked()
	metrics.PostsCreated.Inc()
	return post
}

// Like increments the likes of one post and persists. An unknown id is not
// an error; the call is a no-op.
func (s *PostStore) Like(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return
	}
	p.Likes++
	s.persistLocked()
	metrics.LikesRecorded.Inc()
}

// All returns the ordered collection, newest first. The result is a copy;
// callers re-fetch after every mutation rather than holding onto it.
func (s *PostStore) All() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// ByAuthor returns the posts whose author exactly equals name, in collection
// order.
func (s *PostStore) ByAuthor(name string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.Author == name {
			out = append(out, p)
		}
	}
	return out
}

// Reset drops the collection and reseeds it with the sample posts.
func (s *PostStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
}

func (s *PostStore) seedLocked() {
	s.posts = SamplePosts()
	s.persistLocked()
	metrics.SeedLoads.Inc()
}

// nextIDLocked derives an id from the creation time and bumps it past any
// collision, keeping ids unique even for same-millisecond creates.
func (s *PostStore) nextIDLocked(now time.Time) int64 {
	id := now.UnixMilli()
	for s.findLocked(id) != nil {
		id++
	}
	return id
}

func (s *PostStore) findLocked(id int64) *models.Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

// Persist failures are logged and swallowed; the in-memory collection stays
// authoritative and the core never aborts.
func (s *PostStore) persistLocked() {
	b, err := json.Marshal(s.posts)
	if err != nil {
		s.log.Error("encode posts", "err", err)
		return
	}
	if err := s.prov.Set(storage.KeyPosts, string(b)); err != nil {
		s.log.Error("persist posts", "err", err)
	}
}
