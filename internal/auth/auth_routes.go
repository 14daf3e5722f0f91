package auth

import (
	"github.com/aman52kwah/kaynetartsphere/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// Tight per-IP limits on the unauthenticated surface.
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			// Called once per app load to derive the session flags.
			authenticated.GET("/user",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)
			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
