package middleware

import (
	"washbay/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests per route pattern and status.
func MetricsMiddleware() gin.HandlerFunc {
	metrics.Register()
	return func(c *gin.Context) {
		c.Next()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, endpoint, c.Writer.Status())
	}
}
