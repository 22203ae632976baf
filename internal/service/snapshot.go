package service

//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// SnapshotService определяет контракт сохранения снимков состояния отключений
type SnapshotService interface {
	// CaptureSnapshot получает свежие данные и сохраняет их одной партией. Возвращает число строк
	CaptureSnapshot(ctx context.Context) (int, error)
}

type snapshotService struct {
	source OutageSource
	repo   SnapshotRepository
	logger *logrus.Logger
	now    func() time.Time
}

// NewSnapshotService создает сервис снимков. Источник используется напрямую, без кэша
func NewSnapshotService(source OutageSource, repo SnapshotRepository, logger *logrus.Logger) SnapshotService {
	return &snapshotService{
		source: source,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *snapshotService) CaptureSnapshot(ctx context.Context) (int, error) {
	// Postgres хранит timestamptz с точностью до микросекунд
	at := s.now().UTC().Truncate(time.Microsecond)

	log := s.logger.WithFields(logrus.Fields{
		"service":       "snapshot",
		"method":        "CaptureSnapshot",
		"snapshot_time": at,
	})

	events, err := s.source.FetchOutages(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch outages for snapshot")
		return 0, fmt.Errorf("service: could not fetch outages for snapshot: %w", err)
	}

	if err := s.repo.SaveSnapshot(ctx, events, at); err != nil {
		log.WithError(err).Error("Failed to save snapshot")
		return 0, fmt.Errorf("service: could not save snapshot: %w", err)
	}

	log.WithField("rows", len(events)).Info("Snapshot saved")
	return len(events), nil
}
