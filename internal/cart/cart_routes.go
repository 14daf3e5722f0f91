package cart

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	grp := rg.Group("/cart")
	grp.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(10, 20))
	{
		grp.GET("", h.Detail)
		grp.POST("/items", h.AddItem)
		grp.PATCH("/items/:productId", h.UpdateQuantity)
		grp.DELETE("/items/:productId", h.RemoveItem)
		grp.DELETE("", h.Clear)
	}
}
