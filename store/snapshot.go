package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// Snapshot is every collection read once from a Store.
type Snapshot struct {
	Notes         []models.Note
	Flashcards    []models.StoredFlashcard
	Quizzes       []models.StoredQuiz
	QuizQuestions []models.QuizQuestion
	Activity      []models.ActivityEntry
}

// Load reads all collections. A collection that is missing, unreadable or
// malformed comes back empty without affecting the others.
func Load(ctx context.Context, s Store) *Snapshot {
	return &Snapshot{
		Notes:         LoadCollection[models.Note](ctx, s, KeyNotes),
		Flashcards:    LoadCollection[models.StoredFlashcard](ctx, s, KeyFlashcards),
		Quizzes:       LoadCollection[models.StoredQuiz](ctx, s, KeyQuizzes),
		QuizQuestions: LoadCollection[models.QuizQuestion](ctx, s, KeyQuizQuestions),
		Activity:      LoadCollection[models.ActivityEntry](ctx, s, KeyRecentActivity),
	}
}

// LoadCollection decodes the JSON array under key. It never fails: errors
// are logged and yield an empty, non-nil slice. Use ReadCollection before
// writing the collection back.
func LoadCollection[T any](ctx context.Context, s Store, key string) []T {
	items, err := ReadCollection[T](ctx, s, key)
	if err != nil {
		log.Printf("LoadCollection: %v", err)
		return []T{}
	}
	return items
}

// ReadCollection decodes the JSON array under key. A missing or malformed
// value yields an empty, non-nil slice; a failed read is returned as an
// error so the caller does not overwrite data it could not see.
func ReadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("ReadCollection: malformed %s, treating as empty: %v", key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection encodes items as a JSON array under key.
func SaveCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}

// AppendActivity prepends entry to the recent-activity log and keeps the
// newest MaxActivity entries.
func AppendActivity(ctx context.Context, s Store, entry models.ActivityEntry) error {
	activity, err := ReadCollection[models.ActivityEntry](ctx, s, KeyRecentActivity)
	if err != nil {
		return err
	}
	activity = append([]models.ActivityEntry{entry}, activity...)
	if len(activity) > MaxActivity {
		activity = activity[:MaxActivity]
	}
	return SaveCollection(ctx, s, KeyRecentActivity, activity)
}
