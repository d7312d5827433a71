package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/logging"
)

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		evt := logging.Info()
		if c.Writer.Status() >= 500 {
			evt = logging.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("errors", c.Errors.String()).
			Msg("request")
	}
}
