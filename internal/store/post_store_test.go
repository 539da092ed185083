package store_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/board/internal/metrics"
	"github.com/campusconnect/board/internal/models"
	"github.com/campusconnect/board/internal/storage"
	"github.com/campusconnect/board/internal/store"
	"github.com/campusconnect/board/internal/util"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*store.PostStore, *storage.Memory, *util.StubClock) {
	t.Helper()
	prov := storage.NewMemory()
	clock := util.NewStubClock()
	s := store.NewPostStore(prov, clock, discardLogger())
	s.Initialize()
	return s, prov, clock
}

func someDraft() store.Draft {
	return store.Draft{
		Title:      gofakeit.Sentence(4),
		Category:   models.CategoryProject,
		Content:    gofakeit.Paragraph(1, 2, 8, " "),
		RawTags:    "go, testing",
		AuthorName: gofakeit.Name(),
	}
}

func TestInitializeSeedsWhenEmpty(t *testing.T) {
	s, prov, _ := newTestStore(t)

	posts := s.All()
	require.Equal(t, store.SamplePosts(), posts)

	raw, ok, err := prov.Get(storage.KeyPosts)
	require.NoError(t, err)
	require.True(t, ok, "seed set must be persisted immediately")
	var stored []models.Post
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Equal(t, posts, stored)
}

func TestInitializeRoundTrip(t *testing.T) {
	s, prov, clock := newTestStore(t)
	clock.SetNow(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
	s.Create(someDraft())

	reloaded := store.NewPostStore(prov, clock, discardLogger())
	reloaded.Initialize()
	require.Len(t, reloaded.All(), 7)
	require.Equal(t, s.All(), reloaded.All())
}

func TestInitializeBadBlobReseeds(t *testing.T) {
	prov := storage.NewMemory()
	require.NoError(t, prov.Set(storage.KeyPosts, "{not json"))

	s := store.NewPostStore(prov, util.NewStubClock(), discardLogger())
	s.Initialize()
	require.Equal(t, store.SamplePosts(), s.All())
}

func TestCreatePrependsWithUniqueID(t *testing.T) {
	s, _, clock := newTestStore(t)
	clock.SetNow(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	// Same clock instant: the id must still come out unique.
	first := s.Create(someDraft())
	second := s.Create(someDraft())
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, "2024-03-01", first.Date)
	require.Equal(t, 0, first.Likes)
	require.Equal(t, 0, first.Comments)

	all := s.All()
	require.Equal(t, second.ID, all[0].ID, "newest post comes first")
	require.Equal(t, first.ID, all[1].ID)

	seen := make(map[int64]bool)
	for _, p := range all {
		require.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestCreateAnonymousFallback(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := s.Create(store.Draft{Title: "t", Category: models.CategoryStudy, Content: "c"})
	require.Equal(t, "Anonymous", p.Author)
	require.Equal(t, "A", p.AuthorInitials)
}

func TestCreateDerivesTagsAndInitials(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := s.Create(store.Draft{
		Title:      "t",
		Category:   models.CategoryStudy,
		Content:    "c",
		RawTags:    "a, b ,,c",
		AuthorName: "Sarah Jane Smith",
	})
	require.Equal(t, []string{"a", "b", "c"}, p.Tags)
	require.Equal(t, "SJS", p.AuthorInitials)
}

func TestLikeIncrementsOnlyTarget(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.All()
	target := before[2]

	likes := testutil.ToFloat64(metrics.LikesRecorded)
	s.Like(target.ID)
	require.Equal(t, likes+1, testutil.ToFloat64(metrics.LikesRecorded))

	after := s.All()
	require.Equal(t, target.Likes+1, after[2].Likes)
	after[2].Likes--
	require.Equal(t, before, after, "no other post may change")
}

func TestLikeUnknownIDIsNoop(t *testing.T) {
	s, prov, _ := newTestStore(t)
	rawBefore, _, _ := prov.Get(storage.KeyPosts)
	before := s.All()

	s.Like(424242)

	require.Equal(t, before, s.All())
	rawAfter, _, _ := prov.Get(storage.KeyPosts)
	require.Equal(t, rawBefore, rawAfter, "persisted blob must be byte-for-byte unchanged")
}

func TestByAuthor(t *testing.T) {
	s, _, clock := newTestStore(t)
	name := gofakeit.Name()

	d := someDraft()
	d.AuthorName = name
	first := s.Create(d)
	clock.Advance(time.Millisecond)
	d = someDraft()
	d.AuthorName = name
	second := s.Create(d)
	clock.Advance(time.Millisecond)
	s.Create(someDraft())

	got := s.ByAuthor(name)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)
}

func TestResetReseeds(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Create(someDraft())
	created := testutil.ToFloat64(metrics.PostsCreated)
	require.Greater(t, created, 0.0)

	s.Reset()
	require.Equal(t, store.SamplePosts(), s.All())
}
