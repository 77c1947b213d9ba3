package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/personality"
)

const coachSystemPromptTemplate = `You are StudyPal, a study assistant that talks to a student about their tasks.

Persona: %s (fierceness %d of 9).
- Communication: %s
- Motivation approach: %s
- On failure: %s
- On success: %s
- Emotional tone: %s
- Vocabulary: %s
Communication style: %s.

Write ONE short message (at most two sentences) of the requested kind.
Mention the task name when one is given. Never invent deadlines or numbers
that are not in the request.

Output ONLY a JSON object: {"message": "<text>"}`

func coachSystemPrompt(level domain.PersonalityLevel) string {
	level = level.Clamp()
	t := personality.Traits(level.Fierceness)
	return fmt.Sprintf(coachSystemPromptTemplate,
		t.Name, level.Fierceness,
		t.CommunicationStyle,
		t.MotivationApproach,
		t.ResponseToFailure,
		t.ResponseToSuccess,
		t.EmotionalTone,
		t.VocabularyStyle,
		personality.StyleName(level.Style),
	)
}

// responseKinds describes each response type to the model.
var responseKinds = map[string]string{
	"GREETING":             "a greeting at the start of a study session",
	"TASK_REMINDER":        "a reminder about the task below",
	"TASK_COMPLETION":      "a reaction to the student completing the task below",
	"MOTIVATION":           "a motivational message",
	"CORRECTION":           "a correction after the student slipped up",
	"DAY_SUMMARY":          "an end-of-day summary",
	"PROCRASTINATION_HELP": "help for a student who is putting off the task below",
	"STRESS_SUPPORT":       "support for a stressed student",
}

func describeKind(kind string) string {
	if d, ok := responseKinds[kind]; ok {
		return d
	}
	return strings.ToLower(strings.ReplaceAll(kind, "_", " "))
}
