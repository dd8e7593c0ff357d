// Package stats turns word-creation timestamps into streak and activity metrics.
//
// All functions are pure. The calendar is the one of the reference time `now`:
// entries are truncated to midnight in now.Location() before they are compared.
// Entries dated after `now` are ignored everywhere; use SplitFuture to report them.
package stats

import (
	"math"
	"sort"
	"time"
)

const DefaultWindowDays = 7

// Chat-time weights in minutes per message.
const (
	UserMessageMinutes      = 0.2
	AssistantMessageMinutes = 0.4
)

type PeriodUnit string

const (
	PeriodWeek  PeriodUnit = "week"
	PeriodMonth PeriodUnit = "month"
)

type ActivityDay struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type PeriodComparison struct {
	Unit          PeriodUnit `json:"unit"`
	Current       int        `json:"current"`
	Previous      int        `json:"previous"`
	PercentChange int        `json:"percent_change"`
}

type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// StartOfDay truncates t to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SplitFuture separates entries dated after now.
func SplitFuture(entries []time.Time, now time.Time) (valid, future []time.Time) {
	valid = make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e.After(now) {
			future = append(future, e)
			continue
		}
		valid = append(valid, e)
	}
	return valid, future
}

// dayKey is a calendar day encoded as days since the Unix epoch, which keeps
// "consecutive" well defined across DST shifts.
type dayKey int64

func keyOf(t time.Time, loc *time.Location) dayKey {
	t = t.In(loc)
	y, m, d := t.Date()
	return dayKey(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func uniqueDays(entries []time.Time, now time.Time) map[dayKey]int {
	loc := now.Location()
	days := make(map[dayKey]int)
	for _, e := range entries {
		if e.IsZero() || e.After(now) {
			continue
		}
		days[keyOf(e, loc)]++
	}
	return days
}

// CurrentStreak counts consecutive days with at least one entry, ending today.
// It is 0 when today has no entry.
func CurrentStreak(entries []time.Time, now time.Time) int {
	days := uniqueDays(entries, now)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	for day := keyOf(now, now.Location()); days[day] > 0; day-- {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive days ever observed.
func LongestStreak(entries []time.Time, now time.Time) int {
	days := uniqueDays(entries, now)
	if len(days) == 0 {
		return 0
	}

	keys := make([]dayKey, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		if keys[i]-keys[i-1] == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

func Streaks(entries []time.Time, now time.Time) StreakState {
	return StreakState{
		Current: CurrentStreak(entries, now),
		Longest: LongestStreak(entries, now),
	}
}

// ActivityHistogram buckets entries into the last windowDays calendar days,
// today included, ordered oldest first.
func ActivityHistogram(entries []time.Time, now time.Time, windowDays int) []ActivityDay {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	loc := now.Location()
	today := keyOf(now, loc)
	first := today - dayKey(windowDays-1)
	counts := uniqueDays(entries, now)

	startOfToday := StartOfDay(now, loc)
	out := make([]ActivityDay, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := startOfToday.AddDate(0, 0, i-(windowDays-1))
		out = append(out, ActivityDay{
			Date:  date.Format("2006-01-02"),
			Day:   date.Format("Mon"),
			Count: counts[first+dayKey(i)],
		})
	}
	return out
}

// MissedDays counts the histogram days without a new word.
func MissedDays(days []ActivityDay) int {
	n := 0
	for _, d := range days {
		if d.Count == 0 {
			n++
		}
	}
	return n
}

// MaxWordsInOneDay is the highest per-day count.
func MaxWordsInOneDay(entries []time.Time, now time.Time) int {
	best := 0
	for _, c := range uniqueDays(entries, now) {
		if c > best {
			best = c
		}
	}
	return best
}

// CountSince counts entries in [from, now].
func CountSince(entries []time.Time, from, now time.Time) int {
	n := 0
	for _, e := range entries {
		if !e.Before(from) && !e.After(now) {
			n++
		}
	}
	return n
}

// ComparePeriod counts entries in the current period so far and in the whole
// previous period. Weeks start on Monday; months are calendar months.
func ComparePeriod(entries []time.Time, now time.Time, unit PeriodUnit) PeriodComparison {
	var start, prevStart time.Time
	switch unit {
	case PeriodMonth:
		start = StartOfMonth(now)
		prevStart = start.AddDate(0, -1, 0)
	default:
		unit = PeriodWeek
		start = StartOfWeek(now)
		prevStart = start.AddDate(0, 0, -7)
	}

	current, previous := 0, 0
	for _, e := range entries {
		if e.After(now) {
			continue
		}
		switch {
		case !e.Before(start):
			current++
		case !e.Before(prevStart):
			previous++
		}
	}

	return PeriodComparison{
		Unit:          unit,
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
	}
}

func PercentChange(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AIChatMinutes estimates time spent chatting from message authorship alone.
// It is a heuristic, not a measured duration.
func AIChatMinutes(roles []Role) float64 {
	minutes := 0.0
	for _, r := range roles {
		switch r {
		case RoleUser:
			minutes += UserMessageMinutes
		case RoleAssistant:
			minutes += AssistantMessageMinutes
		}
	}
	return math.Round(minutes*10) / 10
}

// GoalPercentage returns completed/goal as a percentage clamped to [0,100].
func GoalPercentage(completed float64, goal int) int {
	if goal <= 0 {
		return 0
	}
	p := int(math.Round(completed / float64(goal) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
