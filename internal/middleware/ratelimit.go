package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"timeclerk/pkg/response"
)

// RateLimit throttles requests per client IP. Limiters are kept in an
// expiring LRU so idle clients are forgotten.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rps, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: throttling client %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
