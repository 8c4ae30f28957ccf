package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flashlearn-api/generator"
	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/review"
	"github.com/andrewpaige1/flashlearn-api/store"
	"github.com/andrewpaige1/flashlearn-api/utils"
)

// Generator produces study material from note content. An empty result
// means nothing could be generated.
type Generator interface {
	GenerateFlashcards(ctx context.Context, noteContent string) []models.Card
	GenerateQuiz(ctx context.Context, noteContent string) []models.QuizQuestion
}

type DBHandler struct {
	*gorm.DB
	Generator Generator
	Sessions  *review.Registry
	Guard     *generator.Guard
	Now       func() time.Time

	// Stores opens a user's key-value store.
	Stores func(userID uint) store.Store

	writes *userLocks
}

func NewDBHandler(db *gorm.DB, gen Generator) *DBHandler {
	return &DBHandler{
		DB:        db,
		Generator: gen,
		Sessions:  review.NewRegistry(),
		Guard:     generator.NewGuard(),
		Now:       func() time.Time { return time.Now().UTC() },
		Stores:    func(userID uint) store.Store { return store.NewGormStore(db, userID) },
		writes:    newUserLocks(),
	}
}

// storeFor returns the authenticated user and their key-value store.
func (db *DBHandler) storeFor(w http.ResponseWriter, r *http.Request) (*models.User, store.Store, bool) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, nil, false
	}
	return user, db.Stores(user.ID), true
}

func (db *DBHandler) timestamp() string {
	return models.FormatTimestamp(db.Now())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: failed to encode response: %v", err)
	}
}

// indexByID returns the position of the item whose id matches, or -1.
func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

// readCollection loads a collection, writing a 500 when the store cannot be
// read. Malformed values still come back empty.
func readCollection[T any](w http.ResponseWriter, r *http.Request, s store.Store, key string) ([]T, bool) {
	items, err := store.ReadCollection[T](r.Context(), s, key)
	if err != nil {
		log.Printf("readCollection: %v", err)
		http.Error(w, "Failed to load data", http.StatusInternalServerError)
		return nil, false
	}
	return items, true
}

// userLocks serializes read-modify-write cycles on one user's collections.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *userLocks) lock(userID uint) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// lockUser holds the user's write lock until the returned func is called.
func (db *DBHandler) lockUser(userID uint) (unlock func()) {
	return db.writes.lock(userID)
}
