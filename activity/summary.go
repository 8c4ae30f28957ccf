package activity

import (
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// Counts tallies items created (notes, flashcards) or taken (quizzes).
type Counts struct {
	Notes      int `json:"notes" yaml:"notes"`
	Flashcards int `json:"flashcards" yaml:"flashcards"`
	Quizzes    int `json:"quizzes" yaml:"quizzes"`
}

// Summary holds today's and this week's counts.
type Summary struct {
	Daily  Counts `json:"daily" yaml:"daily"`
	Weekly Counts `json:"weekly" yaml:"weekly"`
}

// WeekStart returns the most recent Sunday on or before now, at midnight.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}

// Summarize counts items per day and per week. The week runs from the most
// recent Sunday through today; comparisons are by calendar day.
func Summarize(notes []models.Note, cards []models.StoredFlashcard, quizzes []models.StoredQuiz, now time.Time) Summary {
	today := dayOf(now)
	weekStart := dayOf(WeekStart(now))

	var s Summary
	tally := func(stamp string, daily, weekly *int) {
		d := models.DayKey(stamp)
		if d == "" {
			return
		}
		if d == today {
			*daily++
		}
		if d >= weekStart && d <= today {
			*weekly++
		}
	}

	for _, n := range notes {
		tally(n.Created, &s.Daily.Notes, &s.Weekly.Notes)
	}
	for _, c := range cards {
		tally(c.Created, &s.Daily.Flashcards, &s.Weekly.Flashcards)
	}
	for _, q := range quizzes {
		tally(q.Taken, &s.Daily.Quizzes, &s.Weekly.Quizzes)
	}
	return s
}
