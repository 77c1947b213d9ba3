package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/importer"
	"github.com/alexanderramin/studypal/internal/responder"
)

// resolveTaskID matches input against the user's tasks by exact ID, then
// by unique ID prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.ListByUser(ctx, app.UserID)
	if err != nil {
		return "", err
	}
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, strings.ToLower(input)) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskRemoveCmd(app),
		newTaskImportCmd(app),
	)

	return cmd
}

type taskFlags struct {
	title, due, clock, difficulty, category, description, source string
}

func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "Task title")
	fs.StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
	fs.StringVar(&f.clock, "time", "", "Due time (e.g. 17:00 or 5:30 PM)")
	fs.StringVar(&f.difficulty, "difficulty", "", "easy, medium or hard")
	fs.StringVar(&f.category, "category", "", "Free-form category")
	fs.StringVar(&f.description, "description", "", "Longer description")
}

func newTaskAddCmd(app *App) *cobra.Command {
	var f taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				UserID:      app.UserID,
				Title:       f.title,
				Description: f.description,
				DueDate:     f.due,
				DueTime:     f.clock,
				Difficulty:  domain.Difficulty(strings.ToLower(f.difficulty)),
				Category:    f.category,
				Source:      domain.TaskSource(strings.ToLower(f.source)),
			}
			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s]\n", t.Title, t.DisplayID())
			return nil
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().StringVar(&f.source, "source", "", "manual, voice or assistant")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with their urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tasks, err := app.Tasks.ListByUser(ctx, app.UserID)
			if err != nil {
				return err
			}

			fierceness := app.Personality.GetPair(ctx, app.UserID).Fierceness
			rows := make([]formatter.TaskRow, 0, len(tasks))
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				rows = append(rows, formatter.TaskRow{Task: t, Urgency: app.Assistant.ClassifyTaskUrgency(*t, fierceness)})
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fierceness := app.Personality.GetPair(ctx, app.UserID).Fierceness
			row := formatter.TaskRow{Task: t, Urgency: app.Assistant.ClassifyTaskUrgency(*t, fierceness)}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(row))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var f taskFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				t.Title = f.title
			}
			if flags.Changed("due") {
				t.DueDate = f.due
			}
			if flags.Changed("time") {
				t.DueTime = f.clock
			}
			if flags.Changed("difficulty") {
				t.Difficulty = domain.Difficulty(strings.ToLower(f.difficulty))
			}
			if flags.Changed("category") {
				t.Category = f.category
			}
			if flags.Changed("description") {
				t.Description = f.description
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s [%s]\n", t.Title, t.DisplayID())
			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.MarkDone(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", t.Title)
			reply, err := app.Assistant.GenerateResponse(ctx, app.UserID, responder.ResponseTaskCompletion, t.ID)
			if err != nil {
				app.logger().WarnContext(ctx, "completion message failed", "task_id", t.ID, "error", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Mark a completed task as open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.Reopen(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", t.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", id[:min(8, len(id))])
			return nil
		},
	}
}

func newTaskImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import tasks from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Import.ImportTasks(cmd.Context(), app.UserID, schema)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", len(tasks))
			return nil
		},
	}
}
