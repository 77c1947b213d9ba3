package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/personality"
)

func newPersonalityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "personality",
		Aliases: []string{"p"},
		Short:   "Show or change the assistant's personality dials",
	}

	cmd.AddCommand(
		newPersonalityShowCmd(app),
		newPersonalitySetCmd(app),
		newPersonalityTraitsCmd(),
	)

	return cmd
}

func newPersonalityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current fierceness and style",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.Personality.GetSettings(cmd.Context(), app.UserID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonality(settings))
			return nil
		},
	}
}

func newPersonalitySetCmd(app *App) *cobra.Command {
	var fierceness, style float64
	var adaptive bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set fierceness (0-9), style (0-9) or adaptive mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if !flags.Changed("fierceness") && !flags.Changed("style") && !flags.Changed("adaptive") {
				return fmt.Errorf("nothing to set: pass --fierceness, --style or --adaptive")
			}

			settings := app.Personality.GetSettings(ctx, app.UserID)
			saved := true
			if flags.Changed("fierceness") || flags.Changed("style") {
				level := settings.Level
				if flags.Changed("fierceness") {
					level.Fierceness = domain.ClampLevelFloat(fierceness)
				}
				if flags.Changed("style") {
					level.Style = domain.ClampLevelFloat(style)
				}
				saved = app.Personality.SetPair(ctx, app.UserID, level)
			}
			if flags.Changed("adaptive") {
				saved = app.Personality.SetAdaptive(ctx, app.UserID, adaptive) && saved
			}

			if !saved {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("Warning: could not save; the change lasts for this session only."))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonality(app.Personality.GetSettings(ctx, app.UserID)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&fierceness, "fierceness", "f", 0, "Fierceness 0 (sweet) to 9 (supreme commander); fractions round down")
	cmd.Flags().Float64VarP(&style, "style", "s", 0, "Communication style 0 (warm) to 9 (robot); fractions round down")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "Let profile recomputes pick the dials")

	return cmd
}

func newPersonalityTraitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traits [LEVEL]",
		Short: "Describe one fierceness level, or list all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				raw, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid level %q: %w", args[0], err)
				}
				level := domain.ClampLevelFloat(raw)
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTraits(level, personality.Traits(level)))
				return nil
			}

			rows := make([][]string, 0, domain.MaxLevel+1)
			for level := 0; level <= domain.MaxLevel; level++ {
				t := personality.Traits(level)
				rows = append(rows, []string{strconv.Itoa(level), formatter.Bold(t.Name), t.EmotionalTone, personality.StyleName(level)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"LEVEL", "FIERCENESS", "TONE", "STYLE"}, rows))
			return nil
		},
	}
}
