package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes bounds the request body; multipart uploads beyond the
// limit fail at read time.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.String(http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
		}
	}
}
