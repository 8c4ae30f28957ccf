// Package activity derives dashboard figures from a user's stored study
// collections: the recent-activity timeline, streaks, the daily goal,
// daily/weekly summaries, search results and the activity calendar.
// Everything is recomputed from a store snapshot; nothing is indexed.
package activity

import (
	"fmt"
	"sort"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// Item types.
const (
	TypeNote      = "Note"
	TypeFlashcard = "Flashcard"
	TypeQuiz      = "Quiz"
)

// MaxTimeline is the number of timeline entries returned.
const MaxTimeline = 10

// DescriptionLength is how many characters of a body a description keeps.
const DescriptionLength = 60

// TimelineItem is one entry of the recent-activity timeline.
type TimelineItem struct {
	Type        string    `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Time        time.Time `json:"time" yaml:"time"`
	Icon        string    `json:"icon" yaml:"icon"`
}

// Timeline merges notes and flashcards that carry a creation time with
// quizzes that carry a completion time, newest first, keeping MaxTimeline.
// Entries whose timestamp does not parse are left out.
func Timeline(notes []models.Note, cards []models.StoredFlashcard, quizzes []models.StoredQuiz) []TimelineItem {
	items := make([]TimelineItem, 0, len(notes)+len(cards)+len(quizzes))

	add := func(typ, title, desc, stamp, icon string) {
		if stamp == "" {
			return
		}
		t, ok := models.ParseTimestamp(stamp)
		if !ok {
			return
		}
		items = append(items, TimelineItem{Type: typ, Title: title, Description: desc, Time: t, Icon: icon})
	}

	for _, n := range notes {
		add(TypeNote, n.Title, Describe(n.Content), n.Created, "note")
	}
	for _, c := range cards {
		add(TypeFlashcard, c.Front, Describe(c.Back), c.Created, "flashcard")
	}
	for _, q := range quizzes {
		add(TypeQuiz, q.Title, questionCount(q), q.Taken, "quiz")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time.After(items[j].Time)
	})
	if len(items) > MaxTimeline {
		items = items[:MaxTimeline]
	}
	return items
}

// Describe truncates body to DescriptionLength characters, marking the cut
// with an ellipsis.
func Describe(body string) string {
	runes := []rune(body)
	if len(runes) <= DescriptionLength {
		return body
	}
	return string(runes[:DescriptionLength]) + "..."
}

func questionCount(q models.StoredQuiz) string {
	return fmt.Sprintf("%d questions", len(q.Questions))
}
