package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

func (a *app) markCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark",
		Short: "Mark today's workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTracker(func(t *services.Tracker) error {
				res := t.MarkWorkout(cmd.Context())
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, res.Signal.Message)
				printStreak(out, res.Streak)
				printWeekly(out, res.Weekly)
				return nil
			})
		},
	}
}

func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the streak, weekly progress and today's workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTracker(func(t *services.Tracker) error {
				d := t.Dashboard(cmd.Context())
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Date: %s\n", d.Today)
				printStreak(out, d.Streak)
				printWeekly(out, d.Weekly)
				if d.TodayWorkout != nil {
					fmt.Fprintf(out, "Today: %s\n", describeWorkout(*d.TodayWorkout))
				} else {
					fmt.Fprintln(out, "Today: no workout planned")
				}
				fmt.Fprintf(out, "\n%s\n", d.Quote)
				return nil
			})
		},
	}
}

func (a *app) reconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Reset a lapsed streak and drop stale weekly entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTracker(func(t *services.Tracker) error {
				if t.Reconcile(cmd.Context()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Streak lost. Start a new one today!")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Streak is up to date")
				return nil
			})
		},
	}
}

func printStreak(out io.Writer, s domain.StreakStats) {
	fmt.Fprintf(out, "Streak: %d days | Level %d | %d XP | Energy %d%%\n", s.Counter, s.Level, s.XP, s.EnergyPercent)
}

func printWeekly(out io.Writer, w domain.WeeklyProgress) {
	var b strings.Builder
	for _, d := range w.Days {
		if d.WorkedOut {
			b.WriteString("■")
		} else {
			b.WriteString("□")
		}
	}
	fmt.Fprintf(out, "Week: %d/%d (%d%%) %s\n", w.Count, w.Goal, w.Percentage, b.String())
}

func describeWorkout(w domain.WorkoutRecord) string {
	d := w.Type.Display()
	parts := []string{d.Emoji + " " + d.Label}
	if w.Duration != nil {
		parts = append(parts, fmt.Sprintf("%d min", *w.Duration))
	}
	if id, ok := w.Intensity.Display(); ok {
		parts = append(parts, id.Label)
	}
	if w.Completed {
		parts = append(parts, "done")
	}
	return strings.Join(parts, " · ")
}
