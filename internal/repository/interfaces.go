package repository

import (
	"context"

	"github.com/alexanderramin/studypal/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type PersonalityRepo interface {
	Get(ctx context.Context, userID string) (*domain.PersonalitySettings, error)
	Upsert(ctx context.Context, s *domain.PersonalitySettings) error
}

type StudentProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, p *domain.StudentProfile) error
}
