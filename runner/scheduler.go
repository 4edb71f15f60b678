package runner

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily operation sweep at a fixed local time.
type Scheduler struct {
	cron     *cron.Cron
	location *time.Location
	runner   *Runner
	mu       sync.Mutex
	started  bool
}

// NewScheduler creates a scheduler in the given timezone.
func NewScheduler(timezone string, r *Runner) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("runner: load timezone %q: %w", timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		location: loc,
		runner:   r,
	}, nil
}

// Schedule registers the daily sweep at the given HH:MM local time. The
// sweep imports any new flyer, then runs each gated operation; gating
// makes off-schedule operations a no-op, so running them all daily is
// safe.
func (s *Scheduler) Schedule(at string) error {
	hour, minute, err := parseClock(at)
	if err != nil {
		return err
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	_, err = s.cron.AddFunc(spec, func() {
		today := time.Now().In(s.location)
		s.sweep(today)
	})
	if err != nil {
		return fmt.Errorf("runner: add cron job: %w", err)
	}
	return nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.cron.Start()
		s.started = true
	}
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		<-s.cron.Stop().Done()
		s.started = false
	}
}

func (s *Scheduler) sweep(today time.Time) {
	ctx := context.Background()

	ops := append([]string{OpCreate}, GatedOperations()...)
	for _, op := range ops {
		if err := s.runner.Run(ctx, op, today); err != nil {
			s.runner.log.Error("operation failed", "operation", op, "error", err)
		}
	}
}

func parseClock(at string) (int, int, error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("runner: invalid time %q (expected HH:MM)", at)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("runner: invalid hour in %q", at)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("runner: invalid minute in %q", at)
	}
	return hour, minute, nil
}
