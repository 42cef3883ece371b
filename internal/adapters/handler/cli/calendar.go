package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

func (a *app) weekCommand() *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the Monday to Sunday workout calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateWeekOffset(offset); err != nil {
				return err
			}
			return a.withTracker(func(t *services.Tracker) error {
				view := t.Week(cmd.Context(), offset)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Week %s → %s\n", view.Start, view.End)
				for _, d := range view.Days {
					marker := " "
					if d.IsToday {
						marker = "*"
					}
					desc := "rest"
					if d.Workout != nil {
						desc = describeWorkout(*d.Workout)
					}
					fmt.Fprintf(out, "%s %s %s  %s\n", marker, d.Day.Weekday().String()[:3], d.Day, desc)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Weeks relative to the current one")
	return cmd
}

func (a *app) calendarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Plan and review workouts by day",
	}
	cmd.AddCommand(
		a.calendarSetCommand(),
		a.calendarShowCommand(),
		a.calendarListCommand(),
		a.calendarDoneCommand("done", true),
		a.calendarDoneCommand("undo", false),
		a.calendarRemoveCommand(),
	)
	return cmd
}

func (a *app) calendarSetCommand() *cobra.Command {
	var in services.UpsertWorkoutInput
	var duration int
	cmd := &cobra.Command{
		Use:   "set DAY",
		Short: "Create or replace the workout for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") {
				in.Duration = &duration
			}
			return a.withTracker(func(t *services.Tracker) error {
				w, err := t.UpsertWorkout(cmd.Context(), day, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s\n", day, describeWorkout(*w))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Type, "type", "", "chest, back, legs, shoulders, arms, cardio or full_body")
	cmd.Flags().StringVar(&in.Exercises, "exercises", "", "Exercises, free text")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes, free text")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&in.Intensity, "intensity", "", "low, medium, high or extreme")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) calendarShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show DAY",
		Short: "Show the workout recorded for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			return a.withTracker(func(t *services.Tracker) error {
				w, ok := t.Workout(cmd.Context(), day)
				if !ok {
					return fmt.Errorf("%s: %w", day, domain.ErrWorkoutNotFound)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s: %s\n", day, describeWorkout(*w))
				if w.Exercises != "" {
					fmt.Fprintf(out, "Exercises: %s\n", w.Exercises)
				}
				if w.Notes != "" {
					fmt.Fprintf(out, "Notes: %s\n", w.Notes)
				}
				return nil
			})
		},
	}
}

func (a *app) calendarListCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded workouts in a range, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTracker(func(t *services.Tracker) error {
				end := t.Today()
				if to != "" {
					d, err := parseDayArg(to)
					if err != nil {
						return err
					}
					end = d
				}
				start := end.AddDays(-6)
				if from != "" {
					d, err := parseDayArg(from)
					if err != nil {
						return err
					}
					start = d
				}

				days, err := t.Workouts(cmd.Context(), start, end)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(days) == 0 {
					fmt.Fprintln(out, "No workouts recorded")
					return nil
				}
				for _, d := range days {
					fmt.Fprintf(out, "%s  %s\n", d.Day, describeWorkout(*d.Workout))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day YYYY-MM-DD (default six days before --to)")
	cmd.Flags().StringVar(&to, "to", "", "Last day YYYY-MM-DD (default today)")
	return cmd
}

func (a *app) calendarDoneCommand(use string, completed bool) *cobra.Command {
	short := "Mark a planned workout as done"
	if !completed {
		short = "Mark a planned workout as not done"
	}
	return &cobra.Command{
		Use:   use + " DAY",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			return a.withTracker(func(t *services.Tracker) error {
				w, err := t.SetWorkoutCompleted(cmd.Context(), day, completed)
				if errors.Is(err, domain.ErrWorkoutNotFound) {
					return fmt.Errorf("%s: %w", day, err)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", day, describeWorkout(*w))
				return nil
			})
		},
	}
}

func (a *app) calendarRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm DAY",
		Aliases: []string{"remove"},
		Short:   "Delete the workout for a day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(args[0])
			if err != nil {
				return err
			}
			return a.withTracker(func(t *services.Tracker) error {
				if t.RemoveWorkout(cmd.Context(), day) {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", day)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing recorded on %s\n", day)
				}
				return nil
			})
		},
	}
}
