package customorder

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	grp := rg.Group("/custom-order/draft")
	grp.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(10, 20))
	{
		grp.GET("", h.Get)
		grp.PUT("", h.Update)
		grp.POST("/advance", h.Advance)
		grp.POST("/back", h.Back)
		grp.POST("/reference-image", h.UploadReferenceImage)
		grp.DELETE("", h.Discard)
	}
}
