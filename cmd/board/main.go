package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/campusconnect/board/internal/config"
	"github.com/campusconnect/board/internal/logger"
	"github.com/campusconnect/board/internal/metrics"
	"github.com/campusconnect/board/internal/models"
	"github.com/campusconnect/board/internal/storage"
	"github.com/campusconnect/board/internal/store"
	"github.com/campusconnect/board/internal/util"
	"github.com/campusconnect/board/internal/validate"
	"github.com/campusconnect/board/internal/view"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	prov, err := openStorage(cfg)
	if err != nil {
		log.Error("storage open", "backend", cfg.StorageBackend, "err", err)
		os.Exit(1)
	}

	metrics.Init()
	board := store.NewBoard(prov, util.NewRealClock(), log)
	board.Initialize()
	log.Info("board ready", "backend", cfg.StorageBackend, "posts", len(board.Posts.All()))

	run(board, bufio.NewScanner(os.Stdin), os.Stdout)

	if c, ok := prov.(*storage.SQLite); ok {
		_ = c.Close()
	}
}

func openStorage(cfg config.Config) (storage.Provider, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, err
		}
		return storage.NewSQLite(filepath.Join(cfg.DataDir, "board.db"))
	case "file":
		return storage.NewFile(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

const usage = `commands:
  list                 show the feed
  mine                 show your posts
  search <term>        free-text search
  filter <category>    project | study | resource | event
  post                 create a post
  like <id>            like a post
  login | register     start a session
  profile | edit       show / edit your profile
  logout               end the session (feed resets)
  quit`

// run is the read-eval loop. It holds no post state between commands; every
// render re-fetches from the board.
func run(b *store.Board, in *bufio.Scanner, out *os.File) {
	fmt.Fprintln(out, "campus board —", "type 'help' for commands")
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		switch cmd {
		case "", "help":
			fmt.Fprintln(out, usage)
		case "list":
			view.Posts(out, b.Posts.All())
		case "mine":
			u, ok := b.Session.Current()
			if !ok {
				fmt.Fprintln(out, "Not logged in.")
				continue
			}
			view.Posts(out, b.Posts.ByAuthor(u.Name))
		case "search":
			view.Posts(out, b.FilterPosts(arg, ""))
		case "filter":
			view.Posts(out, b.FilterPosts("", models.Category(arg)))
		case "post":
			createPost(b, in, out)
		case "like":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Fprintln(out, "usage: like <id>")
				continue
			}
			b.LikePost(id)
			fmt.Fprintln(out, "Post liked!")
		case "login":
			email := prompt(in, out, "email")
			password := prompt(in, out, "password")
			u := b.Login(email, password)
			fmt.Fprintf(out, "Login successful! Welcome, %s\n", u.Name)
		case "register":
			register(b, in, out)
		case "profile":
			u, ok := b.Session.Current()
			view.Profile(out, u, ok)
		case "edit":
			editProfile(b, in, out)
		case "logout":
			b.Logout()
			fmt.Fprintln(out, "Logged out successfully!")
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

func prompt(in *bufio.Scanner, out *os.File, label string) string {
	fmt.Fprintf(out, "%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// createPost gathers a draft and validates required fields before handing it
// to the board; the core itself does not re-validate.
func createPost(b *store.Board, in *bufio.Scanner, out *os.File) {
	title := prompt(in, out, "title")
	category := prompt(in, out, "category (project/study/resource/event)")
	content := prompt(in, out, "content")
	tags := prompt(in, out, "tags (comma-separated)")

	var verr validate.ValidationError
	for _, f := range []struct{ name, value string }{
		{"title", title}, {"category", category}, {"content", content},
	} {
		if fe := validate.Required(f.name, f.value); fe != nil {
			verr = append(verr, *fe)
		}
	}
	if len(verr) > 0 {
		fmt.Fprintln(out, "error:", verr.Error())
		return
	}

	p := b.CreatePost(store.Draft{
		Title:    title,
		Category: models.Category(category),
		Content:  content,
		RawTags:  tags,
	})
	fmt.Fprintf(out, "Post created successfully! (#%d)\n", p.ID)
}

func register(b *store.Board, in *bufio.Scanner, out *os.File) {
	name := prompt(in, out, "name")
	email := prompt(in, out, "email")
	major := prompt(in, out, "major")
	password := prompt(in, out, "password")
	confirm := prompt(in, out, "confirm password")

	u, err := b.Register(name, email, major, password, confirm)
	if err != nil {
		var verr validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(out, "Passwords do not match!")
			return
		}
		fmt.Fprintln(out, "error:", err)
		return
	}
	fmt.Fprintf(out, "Registration successful! Welcome, %s\n", u.Name)
}

func editProfile(b *store.Board, in *bufio.Scanner, out *os.File) {
	if !b.Session.IsLoggedIn() {
		fmt.Fprintln(out, "Not logged in.")
		return
	}
	name := prompt(in, out, "name")
	major := prompt(in, out, "major")
	bio := prompt(in, out, "bio")
	skills := prompt(in, out, "skills (comma-separated)")
	interests := prompt(in, out, "interests (comma-separated)")
	b.EditProfile(name, major, bio, skills, interests)
	fmt.Fprintln(out, "Profile updated successfully!")
}
