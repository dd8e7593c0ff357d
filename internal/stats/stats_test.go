package stats

import (
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var riyadh = time.FixedZone("AST", 3*60*60)

// Wednesday 2025-03-12 15:30 local.
var now = time.Date(2025, 3, 12, 15, 30, 0, 0, riyadh)

func daysAgo(n int, hour int) time.Time {
	d := now.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, riyadh)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []time.Time
		want    int
	}{
		{
			name:    "empty list",
			entries: nil,
			want:    0,
		},
		{
			name:    "no entry today",
			entries: []time.Time{daysAgo(1, 10), daysAgo(2, 10)},
			want:    0,
		},
		{
			name:    "only today",
			entries: []time.Time{daysAgo(0, 9)},
			want:    1,
		},
		{
			name:    "five consecutive days ending today",
			entries: []time.Time{daysAgo(0, 9), daysAgo(1, 9), daysAgo(2, 9), daysAgo(3, 9), daysAgo(4, 9)},
			want:    5,
		},
		{
			name: "same-day duplicates count once",
			entries: []time.Time{
				daysAgo(0, 9), daysAgo(0, 11), daysAgo(0, 14),
				daysAgo(1, 8), daysAgo(1, 23),
			},
			want: 2,
		},
		{
			name:    "stops at the first gap",
			entries: []time.Time{daysAgo(0, 9), daysAgo(1, 9), daysAgo(4, 9), daysAgo(5, 9), daysAgo(6, 9)},
			want:    2,
		},
		{
			name:    "unsorted input",
			entries: []time.Time{daysAgo(2, 9), daysAgo(0, 9), daysAgo(1, 9)},
			want:    3,
		},
		{
			name:    "future entries are ignored",
			entries: []time.Time{now.Add(2 * time.Hour), now.AddDate(0, 0, 1)},
			want:    0,
		},
		{
			name: "entries stored in UTC are truncated to local days",
			// 22:30 UTC on the 11th is 01:30 on the 12th in UTC+3.
			entries: []time.Time{time.Date(2025, 3, 11, 22, 30, 0, 0, time.UTC)},
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.entries, now))
		})
	}
}

func TestCurrentStreak_ConsecutiveDaysProperty(t *testing.T) {
	for n := 1; n <= 40; n++ {
		entries := make([]time.Time, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, daysAgo(i, 12))
		}
		assert.Equal(t, n, CurrentStreak(entries, now), "streak of %d days", n)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []time.Time
		want    int
	}{
		{
			name: "empty list",
			want: 0,
		},
		{
			name:    "single day",
			entries: []time.Time{daysAgo(10, 9), daysAgo(10, 18)},
			want:    1,
		},
		{
			name:    "longest run in the past",
			entries: []time.Time{daysAgo(0, 9), daysAgo(10, 9), daysAgo(11, 9), daysAgo(12, 9), daysAgo(13, 9)},
			want:    4,
		},
		{
			name:    "two-day gap resets the run",
			entries: []time.Time{daysAgo(0, 9), daysAgo(1, 9), daysAgo(3, 9), daysAgo(4, 9), daysAgo(5, 9)},
			want:    3,
		},
		{
			name:    "run across a month boundary",
			entries: []time.Time{time.Date(2025, 2, 27, 9, 0, 0, 0, riyadh), time.Date(2025, 2, 28, 9, 0, 0, 0, riyadh), time.Date(2025, 3, 1, 9, 0, 0, 0, riyadh)},
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.entries, now))
		})
	}
}

func TestLongestStreakIsAtLeastCurrent(t *testing.T) {
	sets := [][]time.Time{
		nil,
		{daysAgo(0, 9)},
		{daysAgo(0, 9), daysAgo(1, 9), daysAgo(2, 9)},
		{daysAgo(0, 9), daysAgo(1, 9), daysAgo(7, 9), daysAgo(8, 9)},
		{daysAgo(3, 9), daysAgo(4, 9)},
		{now.Add(time.Hour), daysAgo(0, 1)},
	}
	for _, entries := range sets {
		s := Streaks(entries, now)
		assert.GreaterOrEqual(t, s.Longest, s.Current)
	}
}

func TestActivityHistogram(t *testing.T) {
	entries := []time.Time{
		daysAgo(0, 9), daysAgo(0, 10),
		daysAgo(2, 9),
		daysAgo(6, 23),
		daysAgo(7, 9),  // outside the window
		daysAgo(30, 9), // outside the window
		now.Add(time.Hour),
	}

	got := ActivityHistogram(entries, now, 7)

	require.Len(t, got, 7)
	assert.Equal(t, "2025-03-06", got[0].Date)
	assert.Equal(t, "Thu", got[0].Day)
	assert.Equal(t, "2025-03-12", got[6].Date)
	assert.Equal(t, "Wed", got[6].Day)

	counts := make([]int, 0, len(got))
	sum := 0
	for _, d := range got {
		counts = append(counts, d.Count)
		sum += d.Count
	}
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 2}, counts)
	assert.Equal(t, 4, sum)
	assert.Equal(t, 4, MissedDays(got))
}

func TestActivityHistogram_DefaultWindow(t *testing.T) {
	got := ActivityHistogram(nil, now, 0)
	assert.Len(t, got, DefaultWindowDays)
	for _, d := range got {
		assert.Zero(t, d.Count)
	}
}

func TestComparePeriod_Week(t *testing.T) {
	entries := []time.Time{
		// this week (Mon 10 .. Wed 12)
		time.Date(2025, 3, 10, 0, 0, 0, 0, riyadh),
		time.Date(2025, 3, 12, 8, 0, 0, 0, riyadh),
		time.Date(2025, 3, 12, 9, 0, 0, 0, riyadh),
		// last week (Mon 3 .. Sun 9)
		time.Date(2025, 3, 3, 8, 0, 0, 0, riyadh),
		time.Date(2025, 3, 9, 23, 59, 0, 0, riyadh),
		// two weeks ago
		time.Date(2025, 3, 2, 12, 0, 0, 0, riyadh),
	}

	got := ComparePeriod(entries, now, PeriodWeek)

	assert.Equal(t, PeriodComparison{Unit: PeriodWeek, Current: 3, Previous: 2, PercentChange: 50}, got)
}

func TestComparePeriod_Month(t *testing.T) {
	entries := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, riyadh),
		time.Date(2025, 2, 1, 0, 0, 0, 0, riyadh),
		time.Date(2025, 2, 14, 0, 0, 0, 0, riyadh),
		time.Date(2025, 2, 28, 23, 0, 0, 0, riyadh),
		time.Date(2025, 2, 28, 23, 30, 0, 0, riyadh),
		time.Date(2025, 1, 31, 12, 0, 0, 0, riyadh),
	}

	got := ComparePeriod(entries, now, PeriodMonth)

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 4, got.Previous)
	assert.Equal(t, -75, got.PercentChange)
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous int
		want              int
	}{
		{"both zero", 0, 0, 0},
		{"nothing before", 5, 0, 100},
		{"doubled", 10, 5, 100},
		{"dropped to zero", 0, 4, -100},
		{"rounded", 2, 3, -33},
		{"unchanged", 7, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestStartOfWeek_IsMonday(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 22, 0, 0, 0, riyadh)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, riyadh), StartOfWeek(sunday))

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, riyadh)
	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestAIChatMinutes(t *testing.T) {
	roles := []Role{RoleUser, RoleAssistant, RoleUser, RoleAssistant, RoleAssistant, "system"}
	assert.Equal(t, 1.6, AIChatMinutes(roles))
	assert.Equal(t, 0.0, AIChatMinutes(nil))
}

func TestMaxWordsInOneDay(t *testing.T) {
	entries := []time.Time{daysAgo(0, 1), daysAgo(3, 1), daysAgo(3, 2), daysAgo(3, 3), daysAgo(9, 1)}
	assert.Equal(t, 3, MaxWordsInOneDay(entries, now))
	assert.Equal(t, 0, MaxWordsInOneDay(nil, now))
}

func TestGoalPercentage(t *testing.T) {
	assert.Equal(t, 50, GoalPercentage(5, 10))
	assert.Equal(t, 100, GoalPercentage(25, 10))
	assert.Equal(t, 0, GoalPercentage(3, 0))
	assert.Equal(t, 33, GoalPercentage(20, 60))
}

func TestSplitFuture(t *testing.T) {
	valid, future := SplitFuture([]time.Time{daysAgo(1, 1), now, now.Add(time.Second)}, now)
	assert.Len(t, valid, 2)
	assert.Len(t, future, 1)
}

func TestParseTimestamps(t *testing.T) {
	raw := []string{
		"2025-03-12T10:00:00Z",
		"2025-03-11T09:15:30.123456+03:00",
		"2025-03-10 08:00:00",
		"2025-03-09",
		"not a date",
		"",
	}

	got, skipped := ParseTimestamps(raw, riyadh)

	require.Len(t, got, 4)
	require.Len(t, skipped, 2)
	for _, err := range skipped {
		assert.True(t, apperror.IsData(err))
	}
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, riyadh), got[2])
}

func TestMalformedRowDoesNotZeroTheReport(t *testing.T) {
	raw := []string{
		now.Format(time.RFC3339),
		daysAgo(1, 10).Format(time.RFC3339),
		"garbage",
	}
	entries, skipped := ParseTimestamps(raw, riyadh)

	assert.Len(t, skipped, 1)
	assert.Equal(t, 2, CurrentStreak(entries, now))
}
