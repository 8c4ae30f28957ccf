package activity

import (
	"fmt"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// CalendarDay is one cell of the month grid. Day is 0 for padding cells.
type CalendarDay struct {
	Day    int  `json:"day" yaml:"day"`
	Active bool `json:"active" yaml:"active"`
}

// Calendar is the activity grid for one month, in Sunday-first weeks.
type Calendar struct {
	Year  int             `json:"year" yaml:"year"`
	Month string          `json:"month" yaml:"month"`
	Weeks [][]CalendarDay `json:"weeks" yaml:"weeks"`
}

// MonthCalendar builds the grid for the month containing now. A day is
// active when any activity entry falls on it.
func MonthCalendar(log []models.ActivityEntry, now time.Time) Calendar {
	active := make(map[string]struct{}, len(log))
	for _, a := range log {
		if d := models.DayKey(a.Date); d != "" {
			active[d] = struct{}{}
		}
	}

	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][]CalendarDay
	week := make([]CalendarDay, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		_, ok := active[fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)]
		week = append(week, CalendarDay{Day: day, Active: ok})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		weeks = append(weeks, week)
	}

	return Calendar{Year: year, Month: month.String(), Weeks: weeks}
}
