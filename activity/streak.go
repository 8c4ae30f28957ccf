package activity

import (
	"math"
	"sort"
	"time"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// DailyGoal is the number of activities per day that meets the goal.
const DailyGoal = 3

const dayLayout = "2006-01-02"

func dayOf(t time.Time) string { return t.Format(dayLayout) }

// Streak counts consecutive calendar days with activity, ending today.
// Without activity today the streak is 0, however long yesterday's run was.
func Streak(log []models.ActivityEntry, now time.Time) int {
	seen := make(map[string]struct{}, len(log))
	days := make([]string, 0, len(log))
	for _, a := range log {
		d := models.DayKey(a.Date)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	streak := 0
	for i, d := range days {
		if d != dayOf(now.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}
	return streak
}

// Goal is progress toward DailyGoal.
type Goal struct {
	Target   int  `json:"target" yaml:"target"`
	Today    int  `json:"today" yaml:"today"`
	Progress int  `json:"progress" yaml:"progress"`
	Met      bool `json:"met" yaml:"met"`
}

// DailyProgress counts today's activity entries against DailyGoal.
func DailyProgress(log []models.ActivityEntry, now time.Time) Goal {
	today := dayOf(now)
	count := 0
	for _, a := range log {
		if models.DayKey(a.Date) == today {
			count++
		}
	}
	progress := int(math.Round(100 * float64(count) / DailyGoal))
	return Goal{
		Target:   DailyGoal,
		Today:    count,
		Progress: min(100, progress),
		Met:      count >= DailyGoal,
	}
}
