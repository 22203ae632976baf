package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/sirupsen/logrus"
)

// outageDTO - событие в формате внешнего API
type outageDTO struct {
	Identifier      string   `json:"identifier"` // числовой id внешнего API не используется
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	NumPeople       int      `json:"numPeople"`
	Status          string   `json:"status"`
	LastUpdatedTime float64  `json:"lastUpdatedTime"` // epoch ms
	Cause           *string  `json:"cause,omitempty"`
	EtrTime         *float64 `json:"etrTime,omitempty"` // epoch ms
}

// Client получает текущие события отключений из публичного API
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент внешнего API
func NewClient(url string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchOutages выполняет один GET-запрос без повторных попыток
func (c *Client) FetchOutages(ctx context.Context) ([]models.OutageEvent, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "upstream",
		"method":    "FetchOutages",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Upstream request failed")
		return nil, &models.FetchError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Warn("Upstream returned non-success status")
		return nil, &models.FetchError{StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var raw []outageDTO
	if err := json.Unmarshal(body, &raw); err != nil {
		log.WithError(err).Warn("Upstream response has unexpected shape")
		return nil, &models.FetchError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	// null декодируется без ошибки в nil-срез
	if raw == nil {
		log.Warn("Upstream response is not a JSON array")
		return nil, &models.FetchError{Err: errors.New("response is not a JSON array")}
	}

	events := make([]models.OutageEvent, 0, len(raw))
	for _, dto := range raw {
		events = append(events, normalize(dto))
	}

	log.WithField("count", len(events)).Debug("Fetched outages from upstream")
	return events, nil
}

// normalize приводит событие внешнего API к каноническому виду
func normalize(dto outageDTO) models.OutageEvent {
	event := models.OutageEvent{
		ID:          dto.Identifier,
		Lat:         dto.Latitude,
		Lng:         dto.Longitude,
		NumPeople:   dto.NumPeople,
		Status:      dto.Status,
		LastUpdated: time.UnixMilli(int64(dto.LastUpdatedTime)).UTC(),
	}
	if dto.Cause != nil {
		event.Cause = *dto.Cause
	}
	if dto.EtrTime != nil && *dto.EtrTime != 0 {
		etr := time.UnixMilli(int64(*dto.EtrTime)).UTC()
		event.EstimatedRestoration = &etr
	}
	return event
}
