package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"content-optimizer/internal/shared/metrics"
	"content-optimizer/internal/shared/server/respond"
)

func registerRoutes(r *gin.Engine, deps Deps) {
	root := r.Group("")

	deps.Optimize.RegisterRoutes(root)
	deps.Rewrite.RegisterRoutes(root)

	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})

	// Connectivity check: echoes the body back with a timestamp.
	root.POST("/test", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil || body == nil {
			body = map[string]any{}
		}
		respond.JSON(c, http.StatusOK, gin.H{
			"success":       true,
			"message":       "Test endpoint working correctly",
			"received_data": body,
			"timestamp":     time.Now().Format(time.RFC3339),
		})
	})

	root.GET("/metrics", metrics.Handler())
}
