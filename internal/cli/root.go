package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/service"
)

// App holds the services and settings used by CLI commands.
type App struct {
	UserID string

	Tasks       service.TaskService
	Personality service.PersonalityService
	Profiles    service.ProfileService
	Assistant   service.AssistantService
	Import      service.ImportService

	Logger *slog.Logger
	// Gatherer backs the /metrics endpoint served by watch. Nil disables it.
	Gatherer prometheus.Gatherer

	RecomputeInterval time.Duration
	MetricsAddr       string
	Adaptive          bool
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

// NewRootCmd creates the top-level "studypal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studypal",
		Short:         "Study task tracker with a personality-driven assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.ConfigureColor(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&app.UserID, "user", "u", app.UserID, "User ID to act as")

	root.AddCommand(
		newTaskCmd(app),
		newSayCmd(app),
		newNotifyCmd(app),
		newPersonalityCmd(app),
		newProfileCmd(app),
		newWatchCmd(app),
	)

	return root
}
