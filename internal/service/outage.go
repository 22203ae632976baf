package service

//go:generate mockgen -source=outage.go -destination=mocks/mock_outage.go -package=mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/mtallentb/nes-outage-viewer/internal/geo"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/sirupsen/logrus"
)

// OutageSource определяет контракт получения текущих событий из внешнего API
type OutageSource interface {
	FetchOutages(ctx context.Context) ([]models.OutageEvent, error)
}

// OutageCache определяет контракт кэша последнего ответа внешнего API.
// GetOutages возвращает nil, nil при промахе
type OutageCache interface {
	GetOutages(ctx context.Context) ([]models.OutageEvent, error)
	SetOutages(ctx context.Context, events []models.OutageEvent) error
}

// OutageService определяет контракт бизнес-логики проверки окрестности
type OutageService interface {
	CurrentOutages(ctx context.Context) ([]models.OutageEvent, error)
	NearbyOutages(ctx context.Context, home models.Location, radiusMiles float64) (*models.NearbyReport, error)
}

type outageService struct {
	source OutageSource
	cache  OutageCache
	logger *logrus.Logger
}

// NewOutageService создает сервис. cache может быть nil - тогда каждый вызов идет во внешний API
func NewOutageService(source OutageSource, cache OutageCache, logger *logrus.Logger) OutageService {
	return &outageService{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// CurrentOutages возвращает полный набор текущих событий
func (s *outageService) CurrentOutages(ctx context.Context) ([]models.OutageEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "outage",
		"method":  "CurrentOutages",
	})

	if s.cache != nil {
		cached, err := s.cache.GetOutages(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read outages from cache, falling back to upstream")
		} else if cached != nil {
			log.WithField("count", len(cached)).Debug("Outages served from cache")
			return cached, nil
		}
	}

	events, err := s.source.FetchOutages(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch outages from upstream")
		return nil, fmt.Errorf("service: could not fetch outages: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetOutages(ctx, events); err != nil {
			log.WithError(err).Warn("Failed to store outages in cache")
		}
	}

	log.WithField("count", len(events)).Debug("Outages fetched from upstream")
	return events, nil
}

// NearbyOutages возвращает события в радиусе от дома и сводку по зоне обслуживания
func (s *outageService) NearbyOutages(ctx context.Context, home models.Location, radiusMiles float64) (*models.NearbyReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "outage",
		"method":  "NearbyOutages",
		"radius":  radiusMiles,
	})

	events, err := s.CurrentOutages(ctx)
	if err != nil {
		return nil, err
	}

	nearby := FilterNearby(events, home, radiusMiles)

	report := &models.NearbyReport{
		Outages: nearby,
		Totals: models.OutageTotals{
			ServiceArea: models.SummarizeOutages(events),
			Nearby:      summarizeNearby(nearby),
		},
	}

	log.WithFields(logrus.Fields{
		"total":  len(events),
		"nearby": len(nearby),
	}).Info("Nearby outages computed")
	return report, nil
}

// FilterNearby вычисляет расстояние до дома, оставляет события с distance <= radiusMiles
// и сортирует их по возрастанию расстояния. При равных расстояниях сохраняется исходный порядок
func FilterNearby(events []models.OutageEvent, home models.Location, radiusMiles float64) []models.NearbyOutage {
	nearby := make([]models.NearbyOutage, 0, len(events))
	for _, event := range events {
		distance := geo.DistanceMiles(home, event.Location())
		if distance <= radiusMiles {
			nearby = append(nearby, models.NearbyOutage{OutageEvent: event, Distance: distance})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby
}

func summarizeNearby(nearby []models.NearbyOutage) models.AreaTotals {
	totals := models.AreaTotals{Events: len(nearby)}
	for _, o := range nearby {
		totals.PeopleAffected += o.NumPeople
	}
	return totals
}
