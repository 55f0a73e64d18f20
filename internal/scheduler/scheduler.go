package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler re-runs the analysis task on a cron schedule, writing fresh
// timestamped artifacts on every run.
type Scheduler struct {
	cron *cron.Cron
	task func()
}

// New creates a Scheduler around the given task.
func New(task func()) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithSeconds()), task: task}
}

// Register adds the task under the given cron spec (with seconds field).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.task); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the task immediately, outside the schedule.
func (s *Scheduler) RunNow() { s.task() }
