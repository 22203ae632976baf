package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/config", h.getConfig)
	api.GET("/outages", h.getOutages)
	api.GET("/trends", h.getTrends)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
