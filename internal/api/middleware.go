package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshit2786/pdf-chat-be/pkg/ratelimiter"
)

// RateLimit applies a process-wide rate limiter to every request passing
// through it.
func RateLimit(limiter ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too Many Requests"})
			return
		}
		c.Next()
	}
}
