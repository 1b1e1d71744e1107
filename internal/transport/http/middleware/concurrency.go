package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

// ConcurrencyLimit bounds in-flight requests to protect the database pool.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			response.AbortFail(c, apperr.Internal("server busy", err))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
