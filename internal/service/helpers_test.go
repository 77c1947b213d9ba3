package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

var (
	testNow   = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	testClock = Clock(func() time.Time { return testNow })
	errBoom   = errors.New("boom")
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}

type failingPersonalityRepo struct {
	getErr    error
	upsertErr error
	gets      int
	upserts   int
}

func (r *failingPersonalityRepo) Get(context.Context, string) (*domain.PersonalitySettings, error) {
	r.gets++
	return nil, r.getErr
}

func (r *failingPersonalityRepo) Upsert(context.Context, *domain.PersonalitySettings) error {
	r.upserts++
	return r.upsertErr
}

type failingTaskRepo struct {
	err error
}

func (r failingTaskRepo) Create(context.Context, *domain.Task) error { return r.err }
func (r failingTaskRepo) GetByID(context.Context, string) (*domain.Task, error) {
	return nil, r.err
}
func (r failingTaskRepo) ListByUser(context.Context, string) ([]*domain.Task, error) {
	return nil, r.err
}
func (r failingTaskRepo) Update(context.Context, *domain.Task) error { return r.err }
func (r failingTaskRepo) Delete(context.Context, string) error       { return r.err }
