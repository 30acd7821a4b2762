package scheduler

import (
	"chatbot-relay/internal/infra/logger"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type StatsSource interface {
	Stats(ctx context.Context) (users int, messages int, err error)
}

// Scheduler periodically logs how many conversations and messages the
// chatbot API holds.
type Scheduler struct {
	Logger   *logger.Logger
	Source   StatsSource
	Schedule string

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func New(logger *logger.Logger, source StatsSource, schedule string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		Logger:   logger,
		Source:   source,
		Schedule: schedule,
		cron:     cron.New(cron.WithLocation(time.UTC)),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start registers the stats job. An empty schedule disables it.
func (s *Scheduler) Start() error {
	if s.Schedule == "" {
		s.Logger.Info("History stats schedule not set, scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.Schedule, s.report); err != nil {
		return fmt.Errorf("invalid history stats schedule %q: %w", s.Schedule, err)
	}

	s.cron.Start()
	s.Logger.Info(fmt.Sprintf("Scheduler started with schedule %s", s.Schedule))
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.cancel()
	s.Logger.Info("Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}

func (s *Scheduler) report() {
	users, messages, err := s.Source.Stats(s.ctx)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Error collecting history stats: %v", err))
		return
	}

	s.Logger.Info("History stats", logrus.Fields{
		"users":    users,
		"messages": messages,
	})
}
