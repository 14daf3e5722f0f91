package middleware

import (
	"net/http"
	"time"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency rejects a repeated Idempotency-Key within a short window.
// The checkout submit control is disabled client-side while a submission is
// in flight; this is the server-side guard for the same double-submit.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		redisKey := "idempotency:" + userID + ":" + key

		ok, err := rdb.SetNX(c.Request.Context(), redisKey, "1", 10*time.Minute).Result()
		if err != nil {
			// Redis being down must not block checkout.
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "This request was already processed", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
