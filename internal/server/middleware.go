package server

import (
	"net/http"
	"strconv"
	"time"

	"agrimarket-auction/internal/metrics"
	"agrimarket-auction/services/bidding/helpers"
	"agrimarket-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// MetricsMiddleware records per-route request counts and latencies
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())

	metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
		Observe(time.Since(start).Seconds())
}

// CallerIdentityMiddleware lifts the caller identity attached upstream by the
// identity service into the request context. Authentication itself happens
// outside this service; these headers are trusted as already verified.
func CallerIdentityMiddleware(c *gin.Context) {
	c.Set(helpers.ContextCallerID, c.GetHeader("X-Caller-Id"))
	c.Set(helpers.ContextCallerRole, c.GetHeader("X-Caller-Role"))
	c.Next()
}

// RequireRole rejects requests whose caller role does not match
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if helpers.CallerRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"kind":    "unauthorized",
				"message": "caller role " + role + " required",
			})
			return
		}
		c.Next()
	}
}
