package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver receives one call per finished request. path is the matched
// route template, or "unmatched".
type RequestObserver func(method string, path string, status int, elapsed time.Duration)

func RequestMetrics(observe RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observe(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
