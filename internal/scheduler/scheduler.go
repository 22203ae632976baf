package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Task - одна итерация периодической работы
type Task func(ctx context.Context)

// Scheduler запускает задачу сразу и затем с фиксированным интервалом
type Scheduler struct {
	interval time.Duration
	logger   *logrus.Logger
}

func New(interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		logger:   logger,
	}
}

// Run блокируется до отмены ctx. Интервал меньше секунды cron округляет до секунды
func (s *Scheduler) Run(ctx context.Context, task Task) error {
	if s.interval <= 0 {
		return errors.New("scheduler: interval must be positive")
	}

	// Первый запуск сразу, не дожидаясь интервала
	task(ctx)
	if ctx.Err() != nil {
		return nil
	}

	c := cron.New(cron.WithLogger(cron.PrintfLogger(s.logger)))
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := c.AddFunc(spec, func() { task(ctx) }); err != nil {
		return fmt.Errorf("scheduler: could not schedule %q: %w", spec, err)
	}

	s.logger.WithField("interval", s.interval.String()).Info("Scheduler started")
	c.Start()

	<-ctx.Done()

	// Дожидаемся завершения уже запущенных задач
	<-c.Stop().Done()
	s.logger.Info("Scheduler stopped")
	return nil
}
