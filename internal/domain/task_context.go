package domain

// TaskContext is the per-call view of a task handed to the responder.
// It is built fresh for every call and never stored.
type TaskContext struct {
	TaskName            string
	TimeUntilDueMinutes float64
	IsOverdue           bool
	Difficulty          Difficulty
	Category            string
	CompletionRate      float64
	OverdueTasksCount   int
	// TotalTasks is the denominator used by day summaries. Zero means the
	// caller did not supply one.
	TotalTasks int
}
