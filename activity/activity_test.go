package activity

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

// Saturday.
var now = time.Date(2026, time.October, 17, 14, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return models.FormatTimestamp(now.AddDate(0, 0, -n))
}

func logOn(days ...int) []models.ActivityEntry {
	var entries []models.ActivityEntry
	for _, d := range days {
		entries = append(entries, models.ActivityEntry{Type: models.ActivityQuiz, Title: "q", Date: daysAgo(d)})
	}
	return entries
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		log  []models.ActivityEntry
		want int
	}{
		{"empty log", nil, 0},
		{"today only", logOn(0), 1},
		{"three days then gap", logOn(0, 1, 2, 4, 5), 3},
		{"duplicates on a day", logOn(0, 0, 0, 1, 1), 2},
		{"unordered log", logOn(2, 0, 1), 3},
		{"missing today", logOn(1, 2, 3), 0},
		{"date only strings", []models.ActivityEntry{{Date: "2026-10-17"}, {Date: "2026-10-16"}}, 2},
		{"malformed date skipped", []models.ActivityEntry{{Date: "bad"}, {Date: daysAgo(0)}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.log, now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyProgress(t *testing.T) {
	tests := []struct {
		name     string
		log      []models.ActivityEntry
		progress int
		met      bool
	}{
		{"nothing today", logOn(1, 2), 0, false},
		{"one today", logOn(0, 1), 33, false},
		{"two today", logOn(0, 0), 67, false},
		{"goal met", logOn(0, 0, 0), 100, true},
		{"capped", logOn(0, 0, 0, 0, 0), 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := DailyProgress(tt.log, now)
			if g.Progress != tt.progress || g.Met != tt.met || g.Target != DailyGoal {
				t.Errorf("DailyProgress() = %+v, want progress %d met %v", g, tt.progress, tt.met)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	justAfterMidnight := models.FormatTimestamp(time.Date(2026, time.October, 17, 0, 0, 1, 0, time.UTC))
	notes := []models.Note{
		{ID: "n1", Created: justAfterMidnight},
		{ID: "n2", Created: daysAgo(8)},
		{ID: "n3", Created: daysAgo(6)}, // Sunday, start of the week
		{ID: "n4"},
	}
	cards := []models.StoredFlashcard{
		{ID: "f1", Created: daysAgo(0)},
		{ID: "f2", Created: daysAgo(7)}, // previous Saturday
	}
	quizzes := []models.StoredQuiz{
		{ID: "q1", Taken: daysAgo(3)},
		{ID: "q2"},
	}

	got := Summarize(notes, cards, quizzes, now)

	wantDaily := Counts{Notes: 1, Flashcards: 1, Quizzes: 0}
	wantWeekly := Counts{Notes: 2, Flashcards: 1, Quizzes: 1}
	if got.Daily != wantDaily {
		t.Errorf("Daily = %+v, want %+v", got.Daily, wantDaily)
	}
	if got.Weekly != wantWeekly {
		t.Errorf("Weekly = %+v, want %+v", got.Weekly, wantWeekly)
	}
}

func TestWeekStart(t *testing.T) {
	sunday := time.Date(2026, time.October, 11, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		in   time.Time
		want string
	}{
		{now, "2026-10-11"},
		{sunday, "2026-10-11"},
		{time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), "2026-09-27"},
	}
	for _, tt := range tests {
		got := WeekStart(tt.in)
		if dayOf(got) != tt.want || got.Hour() != 0 {
			t.Errorf("WeekStart(%v) = %v, want %s 00:00", tt.in, got, tt.want)
		}
	}
}

func TestTimelineOrderAndLimit(t *testing.T) {
	var notes []models.Note
	for i := 0; i < 8; i++ {
		notes = append(notes, models.Note{ID: fmt.Sprint(i), Title: fmt.Sprintf("note %d", i), Content: "body", Created: daysAgo(i * 2)})
	}
	notes = append(notes, models.Note{Title: "no timestamp"}, models.Note{Title: "garbled", Created: "yesterday-ish"})
	cards := []models.StoredFlashcard{{Front: "card", Back: strings.Repeat("x", 61), Created: daysAgo(1)}}
	quizzes := []models.StoredQuiz{
		{Title: "quiz", Questions: make([]models.QuizQuestion, 5), Taken: daysAgo(3)},
		{Title: "untaken"},
	}

	items := Timeline(notes, cards, quizzes)

	if len(items) != MaxTimeline {
		t.Fatalf("len(Timeline) = %d, want %d", len(items), MaxTimeline)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Time.After(items[i-1].Time) {
			t.Fatalf("timeline not sorted at %d: %v after %v", i, items[i].Time, items[i-1].Time)
		}
	}
	if items[0].Title != "note 0" {
		t.Errorf("newest = %q, want note 0", items[0].Title)
	}
	if items[1].Type != TypeFlashcard || items[1].Icon != "flashcard" {
		t.Errorf("second item = %+v, want the flashcard", items[1])
	}
	if want := strings.Repeat("x", 60) + "..."; items[1].Description != want {
		t.Errorf("flashcard description = %q", items[1].Description)
	}
	if items[3].Type != TypeQuiz || items[3].Description != "5 questions" {
		t.Errorf("fourth item = %+v, want the quiz", items[3])
	}
	for _, it := range items {
		if it.Title == "no timestamp" || it.Title == "garbled" || it.Title == "untaken" {
			t.Errorf("timeline contains %q", it.Title)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "short"},
		{strings.Repeat("a", 60), strings.Repeat("a", 60)},
		{strings.Repeat("a", 61), strings.Repeat("a", 60) + "..."},
		{strings.Repeat("é", 70), strings.Repeat("é", 60) + "..."},
	}
	for _, tt := range tests {
		if got := Describe(tt.in); got != tt.want {
			t.Errorf("Describe(%d chars) = %q, want %q", len(tt.in), got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	notes := []models.Note{{ID: "n1", Title: "Category", Content: "x"}, {ID: "n2", Title: "Dogs", Content: "woof"}}
	cards := []models.StoredFlashcard{{ID: "f1", Front: "cat", Back: "y"}}
	quizzes := []models.StoredQuiz{{ID: "q1", Title: "Concatenation", Questions: make([]models.QuizQuestion, 2)}}

	got := Search("cat", notes, cards, quizzes)
	if len(got) != 3 {
		t.Fatalf("Search() returned %d results: %+v", len(got), got)
	}
	wantTypes := []string{TypeNote, TypeFlashcard, TypeQuiz}
	for i, w := range wantTypes {
		if got[i].Type != w {
			t.Errorf("result %d type = %s, want %s", i, got[i].Type, w)
		}
	}
	if got[0].ID != "n1" || got[1].Title != "cat" || got[2].Description != "2 questions" {
		t.Errorf("unexpected results: %+v", got)
	}

	if got := Search("WOOF", notes, cards, quizzes); len(got) != 1 || got[0].ID != "n2" {
		t.Errorf("case-insensitive content match = %+v", got)
	}
	if got := Search("   ", notes, cards, quizzes); got == nil || len(got) != 0 {
		t.Errorf("blank query = %v, want empty non-nil", got)
	}
	if got := Search("zebra", notes, cards, quizzes); len(got) != 0 {
		t.Errorf("no-match query = %+v", got)
	}
}

func TestMonthCalendar(t *testing.T) {
	log := []models.ActivityEntry{
		{Date: "2026-10-01T08:00:00.000Z"},
		{Date: "2026-10-17"},
		{Date: "2026-09-30T23:00:00.000Z"},
	}
	cal := MonthCalendar(log, now)

	if cal.Year != 2026 || cal.Month != "October" {
		t.Errorf("calendar header = %d %s", cal.Year, cal.Month)
	}
	if len(cal.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(cal.Weeks))
	}
	for i, w := range cal.Weeks {
		if len(w) != 7 {
			t.Errorf("week %d has %d cells", i, len(w))
		}
	}
	// October 1st 2026 is a Thursday.
	for i := 0; i < 4; i++ {
		if cal.Weeks[0][i].Day != 0 {
			t.Errorf("leading cell %d = %+v, want blank", i, cal.Weeks[0][i])
		}
	}
	if first := cal.Weeks[0][4]; first.Day != 1 || !first.Active {
		t.Errorf("first day cell = %+v, want active day 1", first)
	}
	if d := cal.Weeks[2][6]; d.Day != 17 || !d.Active {
		t.Errorf("Oct 17 cell = %+v, want active", d)
	}
	if d := cal.Weeks[4][6]; d.Day != 31 || d.Active {
		t.Errorf("last cell = %+v, want inactive 31", d)
	}
}

func TestMonthCalendarTrailingBlanks(t *testing.T) {
	cal := MonthCalendar(nil, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC))
	last := cal.Weeks[len(cal.Weeks)-1]
	if last[3].Day != 30 {
		t.Errorf("Sep 30 cell = %+v", last[3])
	}
	for _, c := range last[4:] {
		if c.Day != 0 {
			t.Errorf("trailing cell = %+v, want blank", c)
		}
	}
}

func TestBuildDashboard(t *testing.T) {
	snap := &store.Snapshot{
		Notes:      []models.Note{{ID: "n1", Title: "Pinned", Pinned: true, Created: daysAgo(0)}, {ID: "n2"}},
		Flashcards: []models.StoredFlashcard{{ID: "f1", Pinned: true}},
		Quizzes:    []models.StoredQuiz{},
		Activity:   logOn(0, 1),
	}

	d := Build(snap, now)

	if d.Quote == "" {
		t.Error("Quote is empty")
	}
	if d.Streak != 2 {
		t.Errorf("Streak = %d, want 2", d.Streak)
	}
	if d.Goal.Today != 1 {
		t.Errorf("Goal.Today = %d, want 1", d.Goal.Today)
	}
	if len(d.PinnedNotes) != 1 || d.PinnedNotes[0].ID != "n1" {
		t.Errorf("PinnedNotes = %+v", d.PinnedNotes)
	}
	if len(d.PinnedFlashcards) != 1 {
		t.Errorf("PinnedFlashcards = %+v", d.PinnedFlashcards)
	}
	if len(d.Timeline) != 1 || d.Summary.Daily.Notes != 1 {
		t.Errorf("Timeline = %+v, Summary = %+v", d.Timeline, d.Summary)
	}
}
