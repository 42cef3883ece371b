package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-fit/internal/adapters/store"
	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

const defaultDBPath = "kanso-fit.db"

type Options struct {
	// Now overrides the clock, mostly for tests.
	Now      func() time.Time
	Location *time.Location
	// DBPath is used when --db is not given.
	DBPath string
}

type app struct {
	opts   Options
	dbPath string
}

// NewRootCommand builds the fitctl command tree. Every subcommand opens the
// SQLite store, runs, and closes it again.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.DBPath == "" {
		opts.DBPath = defaultDBPath
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "fitctl",
		Short:         "fitctl tracks workout streaks from your terminal",
		Long:          "fitctl marks daily workouts, shows the streak and weekly progress, and manages the workout calendar.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", opts.DBPath, "Path to SQLite database")

	root.AddCommand(
		a.markCommand(),
		a.statusCommand(),
		a.weekCommand(),
		a.reconcileCommand(),
		a.calendarCommand(),
	)
	return root
}

func Execute(opts Options) {
	if err := NewRootCommand(opts).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) withTracker(run func(*services.Tracker) error) error {
	kv, err := store.NewSQLiteStore(a.dbPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	trackerOpts := []services.TrackerOption{}
	if a.opts.Now != nil {
		trackerOpts = append(trackerOpts, services.WithClock(a.opts.Now))
	}
	tracker := services.NewTracker(services.NewStoreAdapter(kv, nil), a.opts.Location, trackerOpts...)
	return run(tracker)
}

func parseDayArg(s string) (domain.DayKey, error) {
	day, err := domain.ParseDayKey(s)
	if err != nil {
		return domain.DayKey{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", s)
	}
	return day, nil
}
