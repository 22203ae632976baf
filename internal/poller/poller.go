package poller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mtallentb/nes-outage-viewer/internal/scheduler"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/sirupsen/logrus"
)

// SnapshotPoller периодически сохраняет снимки состояния отключений
type SnapshotPoller struct {
	snapshots service.SnapshotService
	scheduler *scheduler.Scheduler
	logger    *logrus.Logger
}

// NewSnapshotPoller создает новый SnapshotPoller
func NewSnapshotPoller(snapshots service.SnapshotService, interval time.Duration, logger *logrus.Logger) *SnapshotPoller {
	return &SnapshotPoller{
		snapshots: snapshots,
		scheduler: scheduler.New(interval, logger),
		logger:    logger,
	}
}

// Start запускает горутину опроса. Останавливается при отмене ctx.
// Возвращаемый канал закрывается, когда завершился последний цикл
func (p *SnapshotPoller) Start(ctx context.Context) <-chan struct{} {
	p.logger.Info("Starting snapshot poller...")
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := p.scheduler.Run(ctx, func(ctx context.Context) {
			_, _ = p.RunOnce(ctx)
		})
		if err != nil {
			p.logger.WithError(err).Error("Snapshot poller stopped with error")
			return
		}
		p.logger.Info("Stopping snapshot poller.")
	}()
	return done
}

// RunOnce выполняет ровно один цикл. Ошибки цикла логируются и не прерывают опрос
func (p *SnapshotPoller) RunOnce(ctx context.Context) (int, error) {
	log := p.logger.WithField("cycle_id", uuid.New().String())
	log.Debug("Polling outages for snapshot...")

	started := time.Now()
	rows, err := p.snapshots.CaptureSnapshot(ctx)
	if err != nil {
		log.WithError(err).Warn("Snapshot cycle failed")
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"rows":     rows,
		"duration": time.Since(started).String(),
	}).Info("Snapshot cycle completed")
	return rows, nil
}
