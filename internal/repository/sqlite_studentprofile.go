package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
)

// SQLiteStudentProfileRepo implements StudentProfileRepo using a SQLite
// database. LastActiveHours is stored as a JSON array.
type SQLiteStudentProfileRepo struct {
	db db.DBTX
}

func NewSQLiteStudentProfileRepo(conn db.DBTX) *SQLiteStudentProfileRepo {
	return &SQLiteStudentProfileRepo{db: conn}
}

func (r *SQLiteStudentProfileRepo) Get(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	query := `SELECT user_id, stress_level, learning_style, preferred_time_of_day,
		average_task_duration, procrastination_tendency, completion_rate,
		last_active_hours, motivation_level, last_updated
		FROM student_profiles WHERE user_id = ?`

	var p domain.StudentProfile
	var stress int
	var style, timeOfDay, hoursJSON, lastUpdated string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&stress,
		&style,
		&timeOfDay,
		&p.LearningPattern.AverageTaskDuration,
		&p.LearningPattern.ProcrastinationTendency,
		&p.LearningPattern.CompletionRate,
		&hoursJSON,
		&p.CurrentMotivationLevel,
		&lastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student profile for %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}

	p.StressLevel = domain.StressLevel(stress)
	p.LearningStyle = domain.LearningStyle(style)
	p.LearningPattern.PreferredTimeOfDay = domain.TimeOfDay(timeOfDay)
	p.LearningPattern.LastActiveHours = []int{}
	if err := json.Unmarshal([]byte(hoursJSON), &p.LearningPattern.LastActiveHours); err != nil {
		return nil, fmt.Errorf("decoding last_active_hours: %w", err)
	}
	if p.LastUpdated, err = parseTime("last_updated", lastUpdated); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteStudentProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	hours := p.LearningPattern.LastActiveHours
	if hours == nil {
		hours = []int{}
	}
	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("encoding last_active_hours: %w", err)
	}

	query := `INSERT INTO student_profiles (user_id, stress_level, learning_style,
		preferred_time_of_day, average_task_duration, procrastination_tendency,
		completion_rate, last_active_hours, motivation_level, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			stress_level             = excluded.stress_level,
			learning_style           = excluded.learning_style,
			preferred_time_of_day    = excluded.preferred_time_of_day,
			average_task_duration    = excluded.average_task_duration,
			procrastination_tendency = excluded.procrastination_tendency,
			completion_rate          = excluded.completion_rate,
			last_active_hours        = excluded.last_active_hours,
			motivation_level         = excluded.motivation_level,
			last_updated             = excluded.last_updated`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID,
		int(p.StressLevel),
		string(p.LearningStyle),
		string(p.LearningPattern.PreferredTimeOfDay),
		p.LearningPattern.AverageTaskDuration,
		p.LearningPattern.ProcrastinationTendency,
		p.LearningPattern.CompletionRate,
		string(hoursJSON),
		p.CurrentMotivationLevel,
		formatTime(p.LastUpdated),
	)
	if err != nil {
		return fmt.Errorf("upserting student profile: %w", err)
	}
	return nil
}
