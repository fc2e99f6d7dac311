// Package server constructs the Gin engine: middleware chain, API routes,
// and operational endpoints.
package server

import (
	"github.com/gin-gonic/gin"

	"content-optimizer/internal/config"
	"content-optimizer/internal/optimize"
	"content-optimizer/internal/rewrite"
	"content-optimizer/internal/services/health"
	"content-optimizer/internal/shared/server/middleware"
)

// Deps are the handlers and services the router wires up.
type Deps struct {
	Optimize *optimize.Handler
	Rewrite  *rewrite.Handler
	Health   *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.CORSAllowOrigins),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.RateLimit(rateLimits()),
	)

	registerRoutes(r, deps)
	return r
}

// rateLimits throttles the rewrite route, which fans out to the generative
// provider; analysis routes are unthrottled.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"REWRITE": {Rate: 1, Burst: 2},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/rewrite" {
				return "REWRITE"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
