package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amsa221/softskills-project/internal/middleware"
	"github.com/Amsa221/softskills-project/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("", h.ListDaily)
		analytics.GET("/daily", h.ListDaily)
	}
}

func (h *AnalyticsHandler) ListDaily(c *gin.Context) {
	stats, err := h.analyticsService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
