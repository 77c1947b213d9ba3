package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// TaskSource records how a task entered the system.
type TaskSource string

const (
	SourceManual    TaskSource = "manual"
	SourceVoice     TaskSource = "voice"
	SourceAssistant TaskSource = "assistant"
)

// ValidTaskSources is the canonical set of accepted task source strings.
var ValidTaskSources = map[string]bool{
	"manual": true, "voice": true, "assistant": true,
}

type UrgencyState string

const (
	UrgencyCompleted UrgencyState = "completed"
	UrgencyOverdue   UrgencyState = "overdue"
	UrgencyCritical  UrgencyState = "critical"
	UrgencyUrgent    UrgencyState = "urgent"
	UrgencyUpcoming  UrgencyState = "upcoming"
)

// Severity orders urgency states from least (0) to most severe.
func (u UrgencyState) Severity() int {
	switch u {
	case UrgencyOverdue:
		return 4
	case UrgencyCritical:
		return 3
	case UrgencyUrgent:
		return 2
	case UrgencyUpcoming:
		return 1
	default:
		return 0
	}
}

// UrgencyColor is the display color tag attached to an urgency state.
type UrgencyColor string

const (
	ColorRed    UrgencyColor = "red"
	ColorOrange UrgencyColor = "orange"
	ColorGreen  UrgencyColor = "green"
	ColorGray   UrgencyColor = "gray"
)

// StressLevel is the four-tier stress classification, stored as 0..3.
type StressLevel int

const (
	StressLow StressLevel = iota
	StressModerate
	StressHigh
	StressCritical
)

func (s StressLevel) String() string {
	switch s {
	case StressLow:
		return "LOW"
	case StressModerate:
		return "MODERATE"
	case StressHigh:
		return "HIGH"
	case StressCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

type LearningStyle string

const (
	LearningVisual      LearningStyle = "visual"
	LearningAuditory    LearningStyle = "auditory"
	LearningKinesthetic LearningStyle = "kinesthetic"
	LearningReading     LearningStyle = "reading"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)
