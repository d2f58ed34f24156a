package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/pkg/metrics"
)

// RequestMetrics records a counter per method/route/status. The route label
// uses the matched template (e.g. /api/vehicles/:id) to keep cardinality low.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
