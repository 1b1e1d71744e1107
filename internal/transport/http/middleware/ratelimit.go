package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

// Limits here are advisory back-pressure, not a correctness mechanism.

// RateLimit applies one shared token bucket to every request.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		response.AbortFail(c, &apperr.Error{
			Status: http.StatusTooManyRequests, Code: "RATE_LIMITED", Msg: "demasiadas solicitudes",
		})
	}
}

// RateLimitPerIP keeps a bucket per client IP; used on /auth/login to slow
// credential stuffing.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		mu.Unlock()
		if lim.Allow() {
			c.Next()
			return
		}
		response.AbortFail(c, &apperr.Error{
			Status: http.StatusTooManyRequests, Code: "RATE_LIMITED", Msg: "demasiadas solicitudes",
		})
	}
}
