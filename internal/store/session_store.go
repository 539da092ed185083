package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/campusconnect/board/internal/auth"
	"github.com/campusconnect/board/internal/models"
	"github.com/campusconnect/board/internal/storage"
	"github.com/campusconnect/board/internal/validate"
)

// SessionStore owns the current user identity. The logged-in state is
// derived from the presence of a user record; it is never tracked as an
// independent flag, so the two cannot disagree.
type SessionStore struct {
	mu sync.RWMutex

	user *models.User
	prov storage.Provider
	log  *slog.Logger
}

func NewSessionStore(prov storage.Provider, log *slog.Logger) *SessionStore {
	return &SessionStore{prov: prov, log: log}
}

// Initialize loads the persisted identity. A stray loggedIn flag without a
// user record is ignored; an unreadable user record means logged out.
func (s *SessionStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.prov.Get(storage.KeyUser)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn("stored user unreadable, starting logged out", "err", err)
		}
		return
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn("stored user undecodable, starting logged out", "err", err)
		return
	}
	s.user = &u
}

// Login always succeeds; there is no credential verification. The identity
// is a deterministic stub keyed by the email address, so repeated logins
// with the same email yield the same user id.
func (s *SessionStore) Login(email, _ string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Name:      "John Doe",
		Email:     email,
		Major:     "Computer Science",
		Skills:    []string{"JavaScript", "React", "Node.js", "Python", "Machine Learning"},
		Interests: []string{"Web Development", "AI/ML", "Mobile Apps", "Data Science"},
	}
	s.user = &u
	s.persistLocked()
	return u
}

// Register creates a fresh identity and logs it in. A confirmation mismatch
// fails with a ValidationError and leaves the session untouched.
func (s *SessionStore) Register(name, email, major, password, confirm string) (models.User, error) {
	if f := validate.Match("confirm_password", password, confirm); f != nil {
		return models.User{}, validate.ValidationError{*f}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Major:        major,
		Skills:       []string{},
		Interests:    []string{},
		PasswordHash: hash,
	}
	s.user = &u
	s.persistLocked()
	return u, nil
}

// EditProfile overwrites the mutable profile fields in place. Without a
// logged-in user it does nothing.
func (s *SessionStore) EditProfile(name, major, bio, rawSkills, rawInterests string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.user.Name = name
	s.user.Major = major
	s.user.Bio = bio
	s.user.Skills = models.SplitList(rawSkills)
	s.user.Interests = models.SplitList(rawInterests)
	s.persistLocked()
}

// Logout clears the identity and both persisted session blobs.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.prov.Remove(storage.KeyUser); err != nil {
		s.log.Error("remove user", "err", err)
	}
	if err := s.prov.Remove(storage.KeyLoggedIn); err != nil {
		s.log.Error("remove login flag", "err", err)
	}
}

func (s *SessionStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// The loggedIn blob is written for layout compatibility but is derived from
// the user record, never read back as the source of truth.
func (s *SessionStore) persistLocked() {
	b, err := json.Marshal(s.user)
	if err != nil {
		s.log.Error("encode user", "err", err)
		return
	}
	if err := s.prov.Set(storage.KeyUser, string(b)); err != nil {
		s.log.Error("persist user", "err", err)
	}
	if err := s.prov.Set(storage.KeyLoggedIn, "true"); err != nil {
		s.log.Error("persist login flag", "err", err)
	}
}
