package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/repository"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect the computed student profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileRecomputeCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the last stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context(), app.UserID)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `studypal profile recompute`.")
				return nil
			}
			if err != nil {
				return err
			}
			suggested := app.Profiles.AdaptivePersonality(*p)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(*p, &suggested))
			return nil
		},
	}
}

func newProfileRecomputeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Rescore tasks and store a fresh profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Profiles.Recompute(cmd.Context(), app.UserID)
			suggested := app.Profiles.AdaptivePersonality(*p)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(*p, &suggested))
			return nil
		},
	}
}
