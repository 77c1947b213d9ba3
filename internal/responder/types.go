package responder

import (
	"errors"
	"fmt"
	"strings"
)

type ResponseType string

const (
	ResponseGreeting            ResponseType = "GREETING"
	ResponseTaskReminder        ResponseType = "TASK_REMINDER"
	ResponseTaskCompletion      ResponseType = "TASK_COMPLETION"
	ResponseMotivation          ResponseType = "MOTIVATION"
	ResponseCorrection          ResponseType = "CORRECTION"
	ResponseDaySummary          ResponseType = "DAY_SUMMARY"
	ResponseProcrastinationHelp ResponseType = "PROCRASTINATION_HELP"
	ResponseStressSupport       ResponseType = "STRESS_SUPPORT"
)

// ResponseTypes lists every response type in a stable order.
var ResponseTypes = []ResponseType{
	ResponseGreeting,
	ResponseTaskReminder,
	ResponseTaskCompletion,
	ResponseMotivation,
	ResponseCorrection,
	ResponseDaySummary,
	ResponseProcrastinationHelp,
	ResponseStressSupport,
}

var (
	// ErrMissingContext is returned when a response type that needs task
	// context is generated without one. It signals a caller bug.
	ErrMissingContext = errors.New("response requires task context")

	// ErrUnknownResponseType is returned for response types outside ResponseTypes.
	ErrUnknownResponseType = errors.New("unknown response type")
)

// RequiresContext reports whether the response type needs a TaskContext.
func (t ResponseType) RequiresContext() bool {
	return t != ResponseGreeting
}

// ParseResponseType accepts names such as "task-reminder" or "TASK_REMINDER".
func ParseResponseType(s string) (ResponseType, error) {
	norm := ResponseType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	for _, t := range ResponseTypes {
		if t == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResponseType, s)
}
