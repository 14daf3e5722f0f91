package order

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(5, 10))
	{
		authed.GET("/orders", h.List)
		authed.GET("/orders/:id", h.Detail)
		authed.GET("/custom-orders", h.ListCustom)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.GET("/orders", h.ListAdmin)
		admin.GET("/orders/recent", h.ListRecent)
		admin.PATCH("/orders/:id/status", h.UpdateStatus)
		admin.GET("/custom-orders", h.ListCustomAdmin)
		admin.PATCH("/custom-orders/:id/status", h.UpdateCustomStatus)
		admin.GET("/dashboard/stats", h.DashboardStats)
	}
}
