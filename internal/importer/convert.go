package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studypal/internal/domain"
)

// Convert turns a validated schema into tasks owned by userID, applying
// defaults to fields the tasks leave empty. Call ValidateImportSchema first.
func Convert(schema *ImportSchema, userID string, now time.Time) []*domain.Task {
	now = now.UTC().Truncate(time.Second)
	var defaults DefaultsImport
	if schema.Defaults != nil {
		defaults = *schema.Defaults
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, ti := range schema.Tasks {
		dueTime := defaults.DueTime
		if ti.DueTime != nil {
			dueTime = *ti.DueTime
		}

		t := &domain.Task{
			ID:          uuid.New().String(),
			UserID:      userID,
			Title:       strings.TrimSpace(ti.Title),
			Description: ti.Description,
			DueDate:     ti.DueDate,
			DueTime:     dueTime,
			Difficulty:  domain.CoalesceDifficulty(domain.Difficulty(strings.ToLower(domain.CoalesceStr(ti.Difficulty, defaults.Difficulty)))),
			Category:    domain.CoalesceStr(ti.Category, defaults.Category),
			Source:      domain.CoalesceSource(domain.TaskSource(strings.ToLower(domain.CoalesceStr(ti.Source, defaults.Source)))),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if ti.Completed {
			t.Completed = true
			completedAt := now
			t.CompletedAt = &completedAt
		}
		tasks = append(tasks, t)
	}
	return tasks
}
