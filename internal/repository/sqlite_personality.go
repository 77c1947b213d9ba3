package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
)

// SQLitePersonalityRepo implements PersonalityRepo using a SQLite database.
type SQLitePersonalityRepo struct {
	db db.DBTX
}

func NewSQLitePersonalityRepo(conn db.DBTX) *SQLitePersonalityRepo {
	return &SQLitePersonalityRepo{db: conn}
}

// Get returns the stored dial pair. Out-of-range values written by older
// clients are clamped on the way out.
func (r *SQLitePersonalityRepo) Get(ctx context.Context, userID string) (*domain.PersonalitySettings, error) {
	query := `SELECT user_id, fierceness, style, adaptive, updated_at
		FROM personality_settings WHERE user_id = ?`

	var s domain.PersonalitySettings
	var adaptive int
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.Level.Fierceness, &s.Level.Style, &adaptive, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("personality settings for %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning personality settings: %w", err)
	}

	s.Level = s.Level.Clamp()
	s.Adaptive = intToBool(adaptive)
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLitePersonalityRepo) Upsert(ctx context.Context, s *domain.PersonalitySettings) error {
	query := `INSERT INTO personality_settings (user_id, fierceness, style, adaptive, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			fierceness = excluded.fierceness,
			style      = excluded.style,
			adaptive   = excluded.adaptive,
			updated_at = excluded.updated_at`
	level := s.Level.Clamp()
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		level.Fierceness,
		level.Style,
		boolToInt(s.Adaptive),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting personality settings: %w", err)
	}
	return nil
}
