package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/responder"
	"github.com/alexanderramin/studypal/internal/service"
)

func responseTypeNames() string {
	names := make([]string, len(responder.ResponseTypes))
	for i, rt := range responder.ResponseTypes {
		names[i] = strings.ToLower(strings.ReplaceAll(string(rt), "_", "-"))
	}
	return strings.Join(names, ", ")
}

func newSayCmd(app *App) *cobra.Command {
	var taskInput string
	var showSource bool

	cmd := &cobra.Command{
		Use:   "say TYPE",
		Short: "Ask the assistant for a message",
		Long:  "Ask the assistant for a message in the current personality.\n\nTypes: " + responseTypeNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := responder.ParseResponseType(args[0])
			if err != nil {
				return err
			}

			var taskID string
			if taskInput != "" {
				if taskID, err = resolveTaskID(ctx, app, taskInput); err != nil {
					return err
				}
			}

			reply, err := app.Assistant.GenerateResponse(ctx, app.UserID, rt, taskID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			if showSource {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("source: "+string(reply.Source)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&taskInput, "task", "", "Task ID or prefix the message is about")
	cmd.Flags().BoolVar(&showSource, "source", false, "Print whether the LLM or the rules produced the text")

	return cmd
}

func newNotifyCmd(app *App) *cobra.Command {
	var within time.Duration

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show reminders for tasks due soon or overdue",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Assistant.Notifications(cmd.Context(), app.UserID, within)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing due. Enjoy the break.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotifications(notificationRows(notes)))
			return nil
		},
	}

	cmd.Flags().DurationVar(&within, "within", 2*time.Hour, "Look-ahead window")

	return cmd
}

func notificationRows(notes []service.Notification) []formatter.NotificationRow {
	rows := make([]formatter.NotificationRow, len(notes))
	for i, n := range notes {
		rows[i] = formatter.NotificationRow{Task: n.Task, Urgency: n.Urgency, Message: n.Message}
	}
	return rows
}
