package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// ValidateImportSchema checks the schema before conversion and returns
// every problem found, not just the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateDefaults(schema.Defaults)...)
	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}
	for i := range schema.Tasks {
		errs = append(errs, validateTask(i, &schema.Tasks[i])...)
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error

	if d.Difficulty != "" && !domain.ValidDifficulties[strings.ToLower(d.Difficulty)] {
		errs = append(errs, fmt.Errorf("defaults.difficulty: invalid value %q", d.Difficulty))
	}
	if d.Source != "" && !domain.ValidTaskSources[strings.ToLower(d.Source)] {
		errs = append(errs, fmt.Errorf("defaults.source: invalid value %q", d.Source))
	}
	if _, _, ok := urgency.ParseClock(d.DueTime); !ok {
		errs = append(errs, fmt.Errorf("defaults.due_time: invalid time %q", d.DueTime))
	}

	return errs
}

func validateTask(i int, t *TaskImport) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.DueDate == "" {
		errs = append(errs, fmt.Errorf("%s.due_date is required", prefix))
	} else if _, _, err := urgency.DueAt(domain.Task{DueDate: t.DueDate}, nil); err != nil {
		errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, t.DueDate))
	}
	if t.DueTime != nil {
		if _, _, ok := urgency.ParseClock(*t.DueTime); !ok {
			errs = append(errs, fmt.Errorf("%s.due_time: invalid time %q", prefix, *t.DueTime))
		}
	}
	if t.Difficulty != "" && !domain.ValidDifficulties[strings.ToLower(t.Difficulty)] {
		errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", prefix, t.Difficulty))
	}
	if t.Source != "" && !domain.ValidTaskSources[strings.ToLower(t.Source)] {
		errs = append(errs, fmt.Errorf("%s.source: invalid value %q", prefix, t.Source))
	}

	return errs
}
