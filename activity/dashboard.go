package activity

import (
	"math/rand/v2"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

var quotes = []string{
	"Success is the sum of small efforts, repeated day in and day out.",
	"The secret of getting ahead is getting started.",
	"Don't watch the clock; do what it does. Keep going.",
	"Learning never exhausts the mind.",
	"The future depends on what you do today.",
	"Push yourself, because no one else is going to do it for you.",
	"Great things never come from comfort zones.",
	"Dream it. Wish it. Do it.",
	"Don't stop when you're tired. Stop when you're done.",
	"Little by little, one travels far.",
}

// Dashboard is everything the home screen shows.
type Dashboard struct {
	Quote            string                   `json:"quote" yaml:"quote"`
	Streak           int                      `json:"streak" yaml:"streak"`
	Goal             Goal                     `json:"goal" yaml:"goal"`
	Summary          Summary                  `json:"summary" yaml:"summary"`
	Timeline         []TimelineItem           `json:"timeline" yaml:"timeline"`
	Calendar         Calendar                 `json:"calendar" yaml:"calendar"`
	PinnedNotes      []models.Note            `json:"pinnedNotes" yaml:"pinnedNotes"`
	PinnedFlashcards []models.StoredFlashcard `json:"pinnedFlashcards" yaml:"pinnedFlashcards"`
}

// Build computes the dashboard from a snapshot as of now.
func Build(snap *store.Snapshot, now time.Time) Dashboard {
	return Dashboard{
		Quote:            quotes[rand.IntN(len(quotes))],
		Streak:           Streak(snap.Activity, now),
		Goal:             DailyProgress(snap.Activity, now),
		Summary:          Summarize(snap.Notes, snap.Flashcards, snap.Quizzes, now),
		Timeline:         Timeline(snap.Notes, snap.Flashcards, snap.Quizzes),
		Calendar:         MonthCalendar(snap.Activity, now),
		PinnedNotes:      pinned(snap.Notes, func(n models.Note) bool { return n.Pinned }),
		PinnedFlashcards: pinned(snap.Flashcards, func(c models.StoredFlashcard) bool { return c.Pinned }),
	}
}

func pinned[T any](items []T, isPinned func(T) bool) []T {
	out := []T{}
	for _, it := range items {
		if isPinned(it) {
			out = append(out, it)
		}
	}
	return out
}
