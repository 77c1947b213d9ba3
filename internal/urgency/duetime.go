package urgency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

const dateLayout = "2006-01-02"

// ErrInvalidDueDate indicates a task due date that is not an ISO calendar date.
var ErrInvalidDueDate = errors.New("invalid due date")

// ParseClock parses a wall-clock time in 24-hour ("15:04", "15:04:05") or
// 12-hour ("3:04 PM", "3pm", "3:04pm") form. An am/pm suffix on an hour
// above 12 is ignored. Components that cannot be parsed default to 0; ok is
// false when anything was defaulted. An empty string is midnight and
// reported as ok.
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, 0, true
	}

	ok = true
	var pm, am bool
	switch {
	case strings.HasSuffix(s, "pm"), strings.HasSuffix(s, "p.m."):
		pm = true
	case strings.HasSuffix(s, "am"), strings.HasSuffix(s, "a.m."):
		am = true
	}
	s = strings.TrimSpace(strings.TrimRight(s, "apm. "))

	parts := strings.Split(s, ":")
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	switch {
	case err != nil || h < 0 || h > 23:
		h, ok = 0, false
		am, pm = false, false
	case h > 12:
		am, pm = false, false
	}
	if len(parts) > 1 {
		m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || m < 0 || m > 59 {
			m, ok = 0, false
		}
		minute = m
	}

	switch {
	case pm && h < 12:
		h += 12
	case am && h == 12:
		h = 0
	}
	return h, minute, ok
}

// DueAt combines the task's due date and due time into an instant in loc.
// An unparseable time falls back to midnight; an unparseable date is an error.
func DueAt(task domain.Task, loc *time.Location) (due time.Time, clockOK bool, err error) {
	if loc == nil {
		loc = time.Local
	}
	raw := strings.TrimSpace(task.DueDate)
	if len(raw) > len(dateLayout) && raw[len(dateLayout)] == 'T' {
		raw = raw[:len(dateLayout)]
	}
	date, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDueDate, task.DueDate)
	}
	h, m, clockOK := ParseClock(task.DueTime)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, loc), clockOK, nil
}
