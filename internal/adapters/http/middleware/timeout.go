package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// SimpleTimeout returns middleware that sets a deadline on the request
// context without attempting to abort on timeout. Handlers must check
// ctx.Done() and handle timeout themselves; the upstream fan-out respects
// context cancellation, so a timed-out request surfaces as an upstream
// failure from the aggregator.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
