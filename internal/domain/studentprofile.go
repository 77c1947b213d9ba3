package domain

import "time"

type LearningPattern struct {
	PreferredTimeOfDay      TimeOfDay
	AverageTaskDuration     float64 // minutes from creation to completion
	ProcrastinationTendency float64 // 0..1
	CompletionRate          float64 // 0..1
	LastActiveHours         []int
}

// StudentProfile is the scorer's view of a user, recomputed periodically
// and upserted to storage.
type StudentProfile struct {
	UserID                 string
	StressLevel            StressLevel
	LearningStyle          LearningStyle
	LearningPattern        LearningPattern
	CurrentMotivationLevel int
	LastUpdated            time.Time
}

// DefaultStudentProfile is a neutral profile used when nothing has been
// computed or stored yet.
func DefaultStudentProfile(userID string, now time.Time) StudentProfile {
	return StudentProfile{
		UserID:        userID,
		StressLevel:   StressLow,
		LearningStyle: LearningVisual,
		LearningPattern: LearningPattern{
			PreferredTimeOfDay: TimeMorning,
			LastActiveHours:    []int{},
		},
		CurrentMotivationLevel: 5,
		LastUpdated:            now,
	}
}
