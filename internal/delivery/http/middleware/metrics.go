package middleware

import (
	"strconv"
	"time"

	"seo-audit-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request duration under the matched route pattern.
// Unmatched routes are grouped under "unmatched".
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
