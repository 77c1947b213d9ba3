package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/llm"
	"github.com/alexanderramin/studypal/internal/responder"
)

const maxMessageRunes = 400

// Source tells which engine produced a reply.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceRules Source = "rules"
)

type Reply struct {
	Text   string
	Source Source
}

// CoachService phrases assistant messages with the LLM when one is
// configured and falls back to the rules responder on any failure.
type CoachService struct {
	client llm.Client
	rules  *responder.Responder
	logger *slog.Logger
}

// NewCoachService creates a CoachService. A nil client means rules only.
func NewCoachService(client llm.Client, rules *responder.Responder, logger *slog.Logger) *CoachService {
	if rules == nil {
		rules = responder.New(nil, nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CoachService{client: client, rules: rules, logger: logger}
}

// Reply produces one message. Contract errors (unknown type, missing
// context) are returned before the LLM is consulted.
func (s *CoachService) Reply(ctx context.Context, rt responder.ResponseType, level domain.PersonalityLevel, tc *domain.TaskContext) (Reply, error) {
	if _, err := responder.ParseResponseType(string(rt)); err != nil {
		return Reply{}, err
	}
	if rt.RequiresContext() && tc == nil {
		return Reply{}, fmt.Errorf("reply %s: %w", rt, responder.ErrMissingContext)
	}

	if s.client != nil {
		text, err := s.llmReply(ctx, rt, level, tc)
		if err == nil {
			return Reply{Text: text, Source: SourceLLM}, nil
		}
		s.logger.DebugContext(ctx, "llm reply rejected, using rules", "type", rt, "error", err)
	}

	text, err := s.rules.Generate(rt, level, tc)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: text, Source: SourceRules}, nil
}

type coachMessage struct {
	Message string `json:"message"`
}

func validateCoachMessage(m coachMessage) error {
	msg := strings.TrimSpace(m.Message)
	if msg == "" {
		return errors.New("message is empty")
	}
	if utf8.RuneCountInString(msg) > maxMessageRunes {
		return fmt.Errorf("message longer than %d characters", maxMessageRunes)
	}
	return nil
}

// coachRequest is the user prompt payload sent to the model.
type coachRequest struct {
	Kind    string       `json:"kind"`
	Task    *taskSummary `json:"task,omitempty"`
	Context *statsDigest `json:"context,omitempty"`
}

type taskSummary struct {
	Name            string `json:"name,omitempty"`
	Difficulty      string `json:"difficulty,omitempty"`
	Category        string `json:"category,omitempty"`
	MinutesUntilDue int    `json:"minutes_until_due"`
	Overdue         bool   `json:"overdue"`
}

type statsDigest struct {
	CompletionPct int `json:"completion_pct"`
	OverdueTasks  int `json:"overdue_tasks"`
	TotalTasks    int `json:"total_tasks,omitempty"`
}

func buildCoachRequest(rt responder.ResponseType, tc *domain.TaskContext) coachRequest {
	req := coachRequest{Kind: describeKind(string(rt))}
	if tc == nil {
		return req
	}
	if tc.TaskName != "" {
		req.Task = &taskSummary{
			Name:            tc.TaskName,
			Difficulty:      string(tc.Difficulty),
			Category:        tc.Category,
			MinutesUntilDue: int(math.Round(tc.TimeUntilDueMinutes)),
			Overdue:         tc.IsOverdue,
		}
	}
	req.Context = &statsDigest{
		CompletionPct: int(math.Round(tc.CompletionRate * 100)),
		OverdueTasks:  tc.OverdueTasksCount,
		TotalTasks:    tc.TotalTasks,
	}
	return req
}

func (s *CoachService) llmReply(ctx context.Context, rt responder.ResponseType, level domain.PersonalityLevel, tc *domain.TaskContext) (string, error) {
	payload, err := json.MarshalIndent(buildCoachRequest(rt, tc), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding coach request: %w", err)
	}

	msg, err := llm.GenerateJSON(ctx, s.client, llm.GenerateRequest{
		Task:         llm.TaskCoachReply,
		SystemPrompt: coachSystemPrompt(level),
		UserPrompt:   string(payload),
	}, validateCoachMessage)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(msg.Message), nil
}
