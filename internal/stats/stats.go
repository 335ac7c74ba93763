// Package stats derives chart data from the current task and habit
// collections. Every function is pure: output depends only on the
// collection and the supplied "now" instant.
package stats

import (
	"math"
	"time"

	habitdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"
	taskdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"
)

// DefaultWindow is the trailing day count used by the progress chart.
const DefaultWindow = 7

// DailyStat is one bucket of the trailing-window chart.
type DailyStat struct {
	Date      string `json:"date"` // short weekday label
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// LifetimeStats summarizes the whole task collection.
type LifetimeStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completion_rate"` // 0..100, 0 when empty
}

// ComplianceStats is done-vs-expected over a period, as a percentage.
type ComplianceStats struct {
	Expected int `json:"expected"`
	Done     int `json:"done"`
	Rate     int `json:"rate"` // 0..100, 0 when nothing is expected
}

// FrequencyPoint is one day of the weekly habit frequency view.
type FrequencyPoint struct {
	Date  string `json:"date"` // short weekday label
	Day   int    `json:"day"`  // day of month
	Count int    `json:"count"`
}

// TodayStats counts habits done today against the habit count.
type TodayStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// DailyTaskStats buckets the trailing `days` calendar days, today
// included. Total counts tasks created on that local calendar date;
// Completed counts tasks completed on it, regardless of when they were
// created. The two counts are independent populations.
func DailyTaskStats(tasks []*taskdomain.Task, now time.Time, days int) []DailyStat {
	if days <= 0 {
		days = DefaultWindow
	}

	result := make([]DailyStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		total := 0
		completed := 0
		for _, t := range tasks {
			if sameDate(t.CreatedAt, day) {
				total++
			}
			if t.CompletedAt != nil && sameDate(*t.CompletedAt, day) {
				completed++
			}
		}

		result = append(result, DailyStat{
			Date:      day.Format("Mon"),
			Completed: completed,
			Total:     total,
		})
	}
	return result
}

// LifetimeTaskStats computes collection-wide totals. The completion
// rate is 0 for an empty collection.
func LifetimeTaskStats(tasks []*taskdomain.Task) LifetimeStats {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return LifetimeStats{
		Total:          len(tasks),
		Completed:      completed,
		CompletionRate: percent(completed, len(tasks)),
	}
}

// MonthlyCompliance compares marked days against the theoretical
// maximum for now's month: habit count times days in month.
func MonthlyCompliance(habits []*habitdomain.Habit, now time.Time) ComplianceStats {
	expected := len(habits) * daysInMonth(now)
	done := 0
	for _, h := range habits {
		done += len(h.CompletedDays)
	}
	return ComplianceStats{
		Expected: expected,
		Done:     done,
		Rate:     percent(done, expected),
	}
}

// WeeklyFrequency counts, for each of the last 7 calendar days, the
// habits whose CompletedDays contains that day-of-month number. Day
// numbers are not unique across month boundaries, so a window spanning
// two months can attribute a mark from the other month to this window.
// Kept as-is to match the chart's established behavior.
func WeeklyFrequency(habits []*habitdomain.Habit, now time.Time) []FrequencyPoint {
	result := make([]FrequencyPoint, 0, DefaultWindow)
	for i := DefaultWindow - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		count := 0
		for _, h := range habits {
			if h.CompletedDays.Contains(day.Day()) {
				count++
			}
		}

		result = append(result, FrequencyPoint{
			Date:  day.Format("Mon"),
			Day:   day.Day(),
			Count: count,
		})
	}
	return result
}

// TodayCompliance counts habits marked for today's day of month.
func TodayCompliance(habits []*habitdomain.Habit, now time.Time) TodayStats {
	completed := 0
	for _, h := range habits {
		if h.CompletedDays.Contains(now.Day()) {
			completed++
		}
	}
	return TodayStats{
		Completed: completed,
		Total:     len(habits),
	}
}

// sameDate reports whether a and b fall on the same calendar date in
// b's location.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// percent is round(100*part/whole), 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

func daysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}
