package service

//go:generate mockgen -source=trend.go -destination=mocks/mock_trend.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/sirupsen/logrus"
)

// SnapshotReader - запросы к снимкам внутри одного согласованного чтения
type SnapshotReader interface {
	DistinctSnapshotTimes(ctx context.Context, since, until time.Time) ([]time.Time, error)
	OutageIDsAt(ctx context.Context, at time.Time) (map[string]struct{}, error)
	AggregatesSince(ctx context.Context, since, until time.Time) ([]models.TrendDataPoint, error)
}

// SnapshotRepository определяет контракт хранилища снимков
type SnapshotRepository interface {
	// SaveSnapshot добавляет по одной строке на событие с общим временем at
	SaveSnapshot(ctx context.Context, events []models.OutageEvent, at time.Time) error
	// ReadWindow выполняет fn в одной транзакции только для чтения
	ReadWindow(ctx context.Context, fn func(SnapshotReader) error) error
	CountRows(ctx context.Context) (int64, error)
}

// TrendService определяет контракт расчета динамики отключений
type TrendService interface {
	// ComputeTrends возвращает nil, nil, если в окне меньше двух снимков
	ComputeTrends(ctx context.Context, hoursBack float64) (*models.TrendData, error)
}

type trendService struct {
	repo   SnapshotRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewTrendService(repo SnapshotRepository, logger *logrus.Logger) TrendService {
	return &trendService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// ComputeTrends сравнивает первый и последний снимки окна [now - hoursBack, now]
func (s *trendService) ComputeTrends(ctx context.Context, hoursBack float64) (*models.TrendData, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "trend",
		"method":     "ComputeTrends",
		"hours_back": hoursBack,
	})

	until := s.now().UTC()
	since := windowStart(until, hoursBack)

	var trends *models.TrendData
	err := s.repo.ReadWindow(ctx, func(r SnapshotReader) error {
		times, err := r.DistinctSnapshotTimes(ctx, since, until)
		if err != nil {
			return err
		}
		if len(times) < 2 {
			return nil
		}
		first, last := times[0], times[len(times)-1]

		firstIDs, err := r.OutageIDsAt(ctx, first)
		if err != nil {
			return err
		}
		lastIDs, err := r.OutageIDsAt(ctx, last)
		if err != nil {
			return err
		}

		// Новые события не считаются устранёнными
		resolved := 0
		for id := range firstIDs {
			if _, ok := lastIDs[id]; !ok {
				resolved++
			}
		}

		resolutionRate := 0.0
		if hoursElapsed := last.Sub(first).Hours(); hoursElapsed > 0 {
			resolutionRate = float64(resolved) / hoursElapsed
		}

		points, err := r.AggregatesSince(ctx, since, until)
		if err != nil {
			return err
		}

		netPeopleChange := 0
		if len(points) > 0 {
			netPeopleChange = points[len(points)-1].TotalPeopleAffected - points[0].TotalPeopleAffected
		}

		trends = &models.TrendData{
			TimeRange:       models.TimeRange{Start: first, End: last},
			ResolutionRate:  resolutionRate,
			NetPeopleChange: netPeopleChange,
			DataPoints:      points,
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to read snapshot window")
		return nil, fmt.Errorf("service: could not compute trends: %w", err)
	}

	if trends == nil {
		log.Info("Not enough snapshots to compute trends")
		return nil, nil
	}

	log.WithFields(logrus.Fields{
		"data_points":     len(trends.DataPoints),
		"resolution_rate": trends.ResolutionRate,
	}).Info("Trends computed")
	return trends, nil
}

// windowStart возвращает начало окна, не допуская переполнения time.Duration
func windowStart(until time.Time, hoursBack float64) time.Time {
	if hoursBack <= 0 {
		return until
	}
	if hoursBack*float64(time.Hour) >= math.MaxInt64 {
		return time.Time{}
	}
	return until.Add(-time.Duration(hoursBack * float64(time.Hour)))
}
