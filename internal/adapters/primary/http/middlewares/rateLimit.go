package middlewares

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit общий на процесс token bucket, при исчерпании 429
func RateLimit(rps float64, burst int, log *slog.Logger) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	retryAfter := strconv.Itoa(max(int(1/rps), 1))

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WarnContext(c.Request.Context(), "rate limit exceeded",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}
