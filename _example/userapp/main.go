// Command userapp demonstrates how to wire a small layered application with
// getbox. Run it with:
//
//	cd _example/userapp && go run .
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/eriicafes/getbox"
	"github.com/go-chi/chi/v5"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

type Config struct {
	Addr     string
	LogLevel string
}

type Logger struct {
	Level string
}

func (l *Logger) Info(msg string) {
	fmt.Printf("[%s] %s\n", l.Level, msg)
}

type UserStore struct {
	Logger *Logger
	users  map[int]string
}

func (s *UserStore) FindByID(id int) (string, bool) {
	s.Logger.Info(fmt.Sprintf("lookup user %d", id))
	name, ok := s.users[id]
	return name, ok
}

type UserService struct {
	Store  *UserStore
	Logger *Logger
}

func (s *UserService) GetUser(id int) (string, bool) {
	return s.Store.FindByID(id)
}

// ---------------------------------------------------------------------------
// Providers
// ---------------------------------------------------------------------------
//
// Each provider states its dependencies explicitly by resolving them from
// the box. Get shares instances; a test can swap any of them with
// getbox.Mock before the first resolution.

var config = getbox.Define(func(*getbox.Box) (*Config, error) {
	return &Config{
		Addr:     env("ADDR", ":8080"),
		LogLevel: env("LOG_LEVEL", "info"),
	}, nil
})

var logger = getbox.Define(func(b *getbox.Box) (*Logger, error) {
	cfg, err := getbox.Get(b, config)
	if err != nil {
		return nil, err
	}
	return &Logger{Level: cfg.LogLevel}, nil
})

var userStore = getbox.Define(func(b *getbox.Box) (*UserStore, error) {
	l, err := getbox.Get(b, logger)
	if err != nil {
		return nil, err
	}
	return &UserStore{
		Logger: l,
		users:  map[int]string{1: "ada", 2: "grace"},
	}, nil
})

func newUserService(store *UserStore, l *Logger) *UserService {
	return &UserService{Store: store, Logger: l}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	b := getbox.NewBox()

	cfg, err := getbox.Get(b, config)
	if err != nil {
		log.Fatal(err)
	}

	// The handler's constructor takes its dependencies positionally; the
	// scoped builder resolves both through the box cache.
	svc, err := getbox.For[*UserService](b, newUserService).Get(userStore, logger)
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(req, "id"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		name, ok := svc.GetUser(id)
		if !ok {
			http.NotFound(w, req)
			return
		}
		fmt.Fprintln(w, name)
	})

	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
