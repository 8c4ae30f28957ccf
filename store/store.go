// Package store persists a user's study collections as JSON documents in a
// string-keyed store.
package store

import (
	"context"
	"errors"
)

// Collection keys.
const (
	KeyNotes          = "flashlearn-notes"
	KeyFlashcards     = "flashlearn-flashcards"
	KeyQuizzes        = "flashlearn-quizzes"
	KeyQuizQuestions  = "flashlearn-quiz-questions"
	KeyRecentActivity = "flashlearn-recent-activity"
)

// MaxActivity is the length of the rolling recent-activity log.
const MaxActivity = 10

var ErrNoUser = errors.New("store: no user scope")

// Store is a string key-value store. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
