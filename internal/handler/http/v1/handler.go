package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mtallentb/nes-outage-viewer/internal/config"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultRadiusMiles = 1.0
	notEnoughDataMsg   = "Not enough snapshot data yet to compute trends"
)

type Handler struct {
	outageService service.OutageService
	trendService  service.TrendService // nil, если хранилище снимков не настроено
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(outageService service.OutageService, trendService service.TrendService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		outageService: outageService,
		trendService:  trendService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Get default configuration
// @Description Home coordinates and radius from the server environment. Coordinates are null when not configured.
// @Tags Config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func (h *Handler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		HomeLat:     h.cfg.HomeLat,
		HomeLng:     h.cfg.HomeLng,
		RadiusMiles: h.cfg.RadiusMiles,
	})
}

// @Summary Get outages near a point
// @Description Fetch current outages and keep those within radius miles of (lat, lng), closest first.
// @Tags Outages
// @Produce json
// @Param lat query number true "Home latitude"
// @Param lng query number true "Home longitude"
// @Param radius query number false "Radius in miles" default(1)
// @Success 200 {object} OutagesResponse
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 500 {object} map[string]string "Upstream fetch failed"
// @Router /outages [get]
func (h *Handler) getOutages(c *gin.Context) {
	log := h.logger.WithField("method", "getOutages")

	var query OutagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	lat, okLat := parseFinite(query.Lat)
	lng, okLng := parseFinite(query.Lng)
	if !okLat || !okLng {
		log.WithFields(logrus.Fields{"lat": query.Lat, "lng": query.Lng}).Warn("Invalid coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	radius, ok := parseFinite(query.Radius)
	if !ok || radius <= 0 {
		radius = defaultRadiusMiles
	}

	home := models.Location{Lat: lat, Lng: lng}
	report, err := h.outageService.NearbyOutages(c.Request.Context(), home, radius)
	if err != nil {
		log.WithError(err).Error("Failed to get nearby outages from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outages"})
		return
	}

	c.JSON(http.StatusOK, ReportToOutagesResponse(report, home, radius))
}

// @Summary Get outage trends
// @Description Resolution rate, net change of affected people and per-snapshot totals over the last hours.
// @Tags Trends
// @Produce json
// @Param hours query number false "Window size in hours" default(6)
// @Success 200 {object} models.TrendData
// @Success 200 {object} TrendsEmptyResponse "Not enough snapshots in the window"
// @Failure 400 {object} map[string]string "Invalid hours parameter"
// @Failure 500 {object} map[string]string "Storage error"
// @Failure 503 {object} map[string]string "Trend tracking is disabled"
// @Router /trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	log := h.logger.WithField("method", "getTrends")

	if h.trendService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trend tracking is disabled"})
		return
	}

	var query TrendsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours parameter"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours parameter"})
		return
	}

	hours := h.cfg.TrendHours
	if query.Hours != "" {
		parsed, ok := parseFinite(query.Hours)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours parameter"})
			return
		}
		hours = parsed
	}

	trends, err := h.trendService.ComputeTrends(c.Request.Context(), hours)
	if err != nil {
		log.WithError(err).Error("Failed to compute trends in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trends"})
		return
	}
	if trends == nil {
		c.JSON(http.StatusOK, TrendsEmptyResponse{
			Message:    notEnoughDataMsg,
			DataPoints: []models.TrendDataPoint{},
		})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// @Summary Health check
// @Description Check the health of the service and whether trend tracking is enabled.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	trends := "disabled"
	if h.trendService != nil {
		trends = "enabled"
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Trends: trends})
}

// parseFinite разбирает число и отбрасывает NaN и бесконечности
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
