package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// taskValues copies repository results into the value slice the scorer takes.
func taskValues(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}
