package checkout

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	grp := rg.Group("")
	grp.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(1, 3))
	{
		grp.GET("/checkout", h.Preview)
		grp.POST("/checkout", middleware.Idempotency(rdb), h.Submit)
		grp.POST("/orders", h.PlaceOrder)
		grp.POST("/custom-orders", h.PlaceCustomOrder)
	}
}
