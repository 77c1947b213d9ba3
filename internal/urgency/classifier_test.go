package urgency

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func taskDueIn(d time.Duration) domain.Task {
	due := testNow.Add(d)
	return domain.Task{
		ID:      "t1",
		Title:   "Essay",
		DueDate: due.Format("2006-01-02"),
		DueTime: due.Format("15:04"),
	}
}

func TestClassify_ScenarioA_DueYesterdayIsOverdue(t *testing.T) {
	res := New(nil).Classify(taskDueIn(-24*time.Hour), 0, testNow)
	assert.Equal(t, domain.UrgencyOverdue, res.State)
	assert.Equal(t, domain.ColorRed, res.Color)
}

func TestClassify_ScenarioB_NinetyMinutesIsCritical(t *testing.T) {
	res := New(nil).Classify(taskDueIn(90*time.Minute), 0, testNow)
	assert.Equal(t, domain.UrgencyCritical, res.State)
	assert.InDelta(t, 1.5, res.AdjustedHours, 1e-9)
	assert.Equal(t, 1.0, res.Multiplier)
}

func TestClassify_ScenarioC_MultiplierPushesIntoCritical(t *testing.T) {
	task := taskDueIn(10 * time.Hour)

	calm := New(nil).Classify(task, 0, testNow)
	assert.Equal(t, domain.UrgencyUrgent, calm.State)
	assert.Equal(t, domain.ColorOrange, calm.Color)
	assert.InDelta(t, 10.0, calm.AdjustedHours, 1e-9)

	fierce := New(nil).Classify(task, 9, testNow)
	assert.Equal(t, domain.UrgencyCritical, fierce.State)
	assert.InDelta(t, 2.0, fierce.AdjustedHours, 1e-9)
}

func TestClassify_FarFutureIsUpcoming(t *testing.T) {
	res := New(nil).Classify(taskDueIn(72*time.Hour), 0, testNow)
	assert.Equal(t, domain.UrgencyUpcoming, res.State)
	assert.Equal(t, domain.ColorGreen, res.Color)
}

func TestClassify_OverduePrecedenceForAllFierceness(t *testing.T) {
	for _, d := range []time.Duration{-time.Minute, -3 * time.Hour, -30 * 24 * time.Hour} {
		for f := 0; f <= 9; f++ {
			res := New(nil).Classify(taskDueIn(d), f, testNow)
			assert.Equal(t, domain.UrgencyOverdue, res.State, "d=%s f=%d", d, f)
			assert.Zero(t, res.Multiplier, "overdue must not apply the multiplier")
		}
	}
}

func TestClassify_CompletedPrecedence(t *testing.T) {
	for _, d := range []time.Duration{-365 * 24 * time.Hour, -time.Hour, time.Minute, 365 * 24 * time.Hour} {
		task := taskDueIn(d)
		task.Completed = true
		for f := 0; f <= 9; f++ {
			res := New(nil).Classify(task, f, testNow)
			assert.Equal(t, domain.UrgencyCompleted, res.State)
			assert.Equal(t, domain.ColorGray, res.Color)
		}
	}

	garbage := domain.Task{DueDate: "not a date", Completed: true}
	assert.Equal(t, domain.UrgencyCompleted, New(nil).Classify(garbage, 4, testNow).State)
}

func TestClassify_MultiplierMonotonicity(t *testing.T) {
	for _, d := range []time.Duration{30 * time.Minute, 5 * time.Hour, 11 * time.Hour, 40 * time.Hour, 100 * time.Hour} {
		task := taskDueIn(d)
		prev := New(nil).Classify(task, 0, testNow)
		for f := 1; f <= 9; f++ {
			cur := New(nil).Classify(task, f, testNow)
			assert.Less(t, cur.AdjustedHours, prev.AdjustedHours, "d=%s f=%d", d, f)
			assert.GreaterOrEqual(t, cur.State.Severity(), prev.State.Severity(), "d=%s f=%d", d, f)
			prev = cur
		}
	}
}

func TestClassify_InvalidDateFallsBackToUpcomingWithWarning(t *testing.T) {
	var buf bytes.Buffer
	c := New(slog.New(slog.NewTextHandler(&buf, nil)))

	res := c.Classify(domain.Task{ID: "bad", DueDate: "31/12/2025", DueTime: "10:00"}, 9, testNow)
	assert.Equal(t, domain.UrgencyUpcoming, res.State)
	assert.False(t, res.Parsed)
	assert.Contains(t, buf.String(), "unparseable due date")
	assert.Contains(t, buf.String(), "task_id=bad")
}

func TestClassify_DateOnlyDefaultsToMidnight(t *testing.T) {
	task := domain.Task{DueDate: "2025-03-16"}
	res := New(nil).Classify(task, 0, testNow)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), res.DueAt)
	assert.Equal(t, domain.UrgencyUrgent, res.State) // 12h away
}

func TestClassify_GarbageTimeDefaultsAndWarns(t *testing.T) {
	var buf bytes.Buffer
	c := New(slog.New(slog.NewTextHandler(&buf, nil)))

	res := c.Classify(domain.Task{DueDate: "2025-03-20", DueTime: "noonish"}, 0, testNow)
	assert.True(t, res.Parsed)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), res.DueAt)
	assert.Contains(t, buf.String(), "unparseable due time")
}

func TestMultiplier_Range(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(0))
	assert.Equal(t, 5.0, Multiplier(9))
	assert.Equal(t, 5.0, Multiplier(20))
	assert.Equal(t, 1.0, Multiplier(-2))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"", 0, 0, true},
		{"15:04", 15, 4, true},
		{"15:04:05", 15, 4, true},
		{"09:30", 9, 30, true},
		{"3:04 PM", 15, 4, true},
		{"3:04pm", 15, 4, true},
		{"3pm", 15, 0, true},
		{"3 pm", 15, 0, true},
		{"11:15 a.m.", 11, 15, true},
		{"12am", 0, 0, true},
		{"12:30 PM", 12, 30, true},
		{"noon", 0, 0, false},
		{"25:00", 0, 0, false},
		{"10:xx", 10, 0, false},
		{"13pm", 13, 0, true},
		{"13:00 pm", 13, 0, true},
		{"23:45 am", 23, 45, true},
		{"24pm", 0, 0, false},
	}
	for _, tc := range cases {
		h, m, ok := ParseClock(tc.in)
		require.Equal(t, tc.hour, h, "in=%q", tc.in)
		require.Equal(t, tc.minute, m, "in=%q", tc.in)
		require.Equal(t, tc.ok, ok, "in=%q", tc.in)
	}
}

func TestDueAt_AcceptsTimestampDate(t *testing.T) {
	due, _, err := DueAt(domain.Task{DueDate: "2025-03-20T08:00:00Z", DueTime: "14:00"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC), due)
}

func TestDueAt_InvalidDate(t *testing.T) {
	_, _, err := DueAt(domain.Task{DueDate: "tomorrow"}, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}
