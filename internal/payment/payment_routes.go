package payment

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	grp := rg.Group("/payments")
	{
		authed := grp.Group("")
		authed.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(1, 3))
		{
			authed.POST("/initialize-order", h.InitializeOrder)
			authed.GET("/verify/:reference", h.Verify)
		}

		// Paystack calls this, authenticated by signature instead of session.
		grp.POST("/webhook", h.Webhook)
	}
}
