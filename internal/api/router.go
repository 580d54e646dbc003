package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/pkg/metrics"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(emailHandler *EmailHandler, analyticsHandler *AnalyticsHandler) *Router {
	r := gin.Default()
	r.Use(requestMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/emails", emailHandler.ListEmails)
	r.GET("/emails/:id", emailHandler.GetEmail)
	r.POST("/emails", emailHandler.CreateEmail)
	r.PUT("/emails/:id/status", emailHandler.UpdateStatus)
	r.PUT("/emails/:id/response", emailHandler.UpdateResponse)

	r.GET("/analytics", analyticsHandler.GetAnalytics)
	r.POST("/init-sample-data", analyticsHandler.InitSampleData)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
