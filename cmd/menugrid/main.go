// Command menugrid runs the lunch-menu workflow: it imports new flyer OCR
// output, publishes the monthly menu spreadsheet, and keeps the weekly
// order sheets and Slack notices in sync with the holiday-aware schedule.
//
// One-shot mode runs a single operation for a given date; daemon mode
// runs the whole sweep every day at the configured time.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsawler/menugrid/config"
	"github.com/tsawler/menugrid/gdrive"
	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/notify"
	"github.com/tsawler/menugrid/runner"
	"github.com/tsawler/menugrid/schedule"
	"github.com/tsawler/menugrid/store"
)

func main() {
	var (
		configPath = flag.String("config", "menugrid.yaml", "path to the configuration file")
		operation  = flag.String("op", runner.OpCreate, "operation to run (create, update_this_week, update_next_week, notice_check_lunch, report_next_week)")
		dateStr    = flag.String("date", "", "run as if today were this date (YYYY-MM-DD, default today)")
		daemon     = flag.Bool("daemon", false, "run the daily sweep on a schedule instead of a single operation")
	)
	flag.Parse()

	if err := run(*configPath, *operation, *dateStr, *daemon); err != nil {
		fmt.Fprintln(os.Stderr, "menugrid:", err)
		os.Exit(1)
	}
}

func run(configPath, operation, dateStr string, daemon bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	tpl := layout.Default()
	if cfg.TemplatePath != "" {
		tpl, err = layout.Load(cfg.TemplatePath)
		if err != nil {
			return err
		}
	}

	holidays, err := schedule.Load(cfg.HolidayPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	drive, err := gdrive.NewDrive(ctx)
	if err != nil {
		return err
	}
	sheets, err := gdrive.NewSheets(ctx)
	if err != nil {
		return err
	}

	r := runner.New(cfg, tpl, runner.Deps{
		Files:    drive,
		Sheets:   sheets,
		Notifier: notify.New(cfg.Slack.Token, ""),
		Store:    db,
		Calendar: holidays,
		Logger:   log,
	})

	if daemon {
		return runDaemon(cfg, r, log)
	}

	today, err := resolveDate(dateStr, cfg.Timezone)
	if err != nil {
		return err
	}
	return r.Run(ctx, operation, today)
}

func runDaemon(cfg config.Config, r *runner.Runner, log *slog.Logger) error {
	sched, err := runner.NewScheduler(cfg.Timezone, r)
	if err != nil {
		return err
	}
	if err := sched.Schedule(cfg.DailyTime); err != nil {
		return err
	}

	sched.Start()
	log.Info("daemon started", "daily_time", cfg.DailyTime, "timezone", cfg.Timezone)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	sched.Stop()
	return nil
}

// resolveDate returns the date the operations should treat as today,
// either parsed from the flag or taken from the configured timezone's
// wall clock.
func resolveDate(dateStr, timezone string) (time.Time, error) {
	if dateStr != "" {
		t, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		return t, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now().In(loc)
	return model.Date(now.Year(), now.Month(), now.Day()), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
