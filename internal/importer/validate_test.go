package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrStr(s string) *string { return &s }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Tasks: []TaskImport{
			{Title: "Essay", DueDate: "2026-03-12"},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Defaults: &DefaultsImport{Difficulty: "hard", Category: "math", Source: "assistant", DueTime: "9:00 AM"},
		Tasks: []TaskImport{
			{Title: "Problem set 3", DueDate: "2026-03-12", DueTime: ptrStr("23:59"), Difficulty: "Easy"},
			{Title: "Quiz prep", DueDate: "2026-03-14T00:00:00Z", Source: "VOICE", Completed: true},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_NoTasks(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	assert.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "at least one task")
}

func TestValidateImportSchema_CollectsEveryError(t *testing.T) {
	schema := &ImportSchema{
		Defaults: &DefaultsImport{Difficulty: "brutal", Source: "email", DueTime: "noonish"},
		Tasks: []TaskImport{
			{Title: "", DueDate: ""},
			{Title: "Lab", DueDate: "03/12/2026", DueTime: ptrStr("31:00"), Difficulty: "extreme", Source: "fax"},
		},
	}

	errs := ValidateImportSchema(schema)

	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Error()
	}
	assert.ElementsMatch(t, []string{
		`defaults.difficulty: invalid value "brutal"`,
		`defaults.source: invalid value "email"`,
		`defaults.due_time: invalid time "noonish"`,
		`tasks[0].title is required`,
		`tasks[0].due_date is required`,
		`tasks[1].due_date: invalid date format "03/12/2026" (expected YYYY-MM-DD)`,
		`tasks[1].due_time: invalid time "31:00"`,
		`tasks[1].difficulty: invalid value "extreme"`,
		`tasks[1].source: invalid value "fax"`,
	}, messages)
}
