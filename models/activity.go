package models

import "time"

// Activity types written to the recent-activity log.
const (
	ActivityQuiz      = "quiz"
	ActivityFlashcard = "flashcard"
	ActivityNote      = "note"
)

// ActivityEntry is one record of the rolling recent-activity log.
type ActivityEntry struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// TimestampLayout matches what browsers produce for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts full ISO-8601 datetimes and bare dates.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey returns the calendar-day part (first 10 characters) of an
// ISO-8601 timestamp, or "" when s is too short to carry one.
func DayKey(s string) string {
	if len(s) < 10 {
		return ""
	}
	return s[:10]
}
