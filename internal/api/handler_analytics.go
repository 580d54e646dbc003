package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	seeder    *service.SeedService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, seeder *service.SeedService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		seeder:    seeder,
	}
}

// GetAnalytics handles GET /analytics
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snapshot, err := h.analytics.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": snapshot})
}

// InitSampleData handles POST /init-sample-data
func (h *AnalyticsHandler) InitSampleData(c *gin.Context) {
	seeded, err := h.seeder.Reseed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize sample data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Sample data initialized successfully",
		"emails":  seeded,
	})
}
