package v1

import (
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
)

// OutagesQuery параметры запроса окрестности. Числа разбираются после валидации
type OutagesQuery struct {
	Lat    string `form:"lat" validate:"required"`
	Lng    string `form:"lng" validate:"required"`
	Radius string `form:"radius"`
}

// TrendsQuery параметры запроса динамики
type TrendsQuery struct {
	Hours string `form:"hours" validate:"omitempty,numeric"`
}

// ConfigResponse DTO настроек по умолчанию
// @Description Домашняя точка и радиус по умолчанию. Координаты null, если не заданы
type ConfigResponse struct {
	HomeLat     *float64 `json:"homeLat" swaggertype:"number"`
	HomeLng     *float64 `json:"homeLng" swaggertype:"number"`
	RadiusMiles float64  `json:"radiusMiles"`
}

// NearbyOutageResponse DTO события рядом с домом
// @Description Событие отключения с расстоянием до дома в милях
type NearbyOutageResponse struct {
	ID                   string     `json:"id"`
	Lat                  float64    `json:"lat"`
	Lng                  float64    `json:"lng"`
	NumPeople            int        `json:"numPeople"`
	Status               string     `json:"status"`
	LastUpdated          time.Time  `json:"lastUpdated"`
	Cause                string     `json:"cause,omitempty"`
	EstimatedRestoration *time.Time `json:"estimatedRestoration,omitempty"`
	Distance             float64    `json:"distance"`
}

// OutagesResponse DTO ответа проверки окрестности
// @Description События в радиусе, сводки и параметры запроса
type OutagesResponse struct {
	Outages []NearbyOutageResponse `json:"outages"`
	Totals  models.OutageTotals    `json:"totals"`
	Config  ConfigResponse         `json:"config"`
}

// TrendsEmptyResponse DTO ответа, когда снимков недостаточно
type TrendsEmptyResponse struct {
	Message    string                  `json:"message"`
	DataPoints []models.TrendDataPoint `json:"dataPoints"`
}

// HealthResponse DTO проверки состояния
type HealthResponse struct {
	Status string `json:"status"`
	Trends string `json:"trends"`
}
