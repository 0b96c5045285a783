package middleware

import (
	"net/http"

	"seo-audit-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// BodySizeLimit caps request bodies at max bytes. Requests that declare a
// larger Content-Length are rejected up front; the rest are cut off while
// being read.
func BodySizeLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > max {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}
