package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a task import file.
type ImportSchema struct {
	Defaults *DefaultsImport `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Tasks    []TaskImport    `json:"tasks" yaml:"tasks"`
}

// DefaultsImport holds values that cascade to tasks leaving them empty.
type DefaultsImport struct {
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	Source     string `json:"source,omitempty" yaml:"source,omitempty"`
	DueTime    string `json:"due_time,omitempty" yaml:"due_time,omitempty"`
}

// TaskImport is one task in the import file.
type TaskImport struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string  `json:"due_date" yaml:"due_date"`
	DueTime     *string `json:"due_time,omitempty" yaml:"due_time,omitempty"`
	Difficulty  string  `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Category    string  `json:"category,omitempty" yaml:"category,omitempty"`
	Source      string  `json:"source,omitempty" yaml:"source,omitempty"`
	Completed   bool    `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// LoadImportSchema reads a task import file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, filepath.Ext(path))
}

// ParseImportSchema decodes data according to the file extension ext.
func ParseImportSchema(data []byte, ext string) (*ImportSchema, error) {
	var schema ImportSchema
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
