package auth

import (
	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth", middleware.ContextLogger(logger))
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.GET("/verify", middleware.RateLimitByIP(1, 5), handler.Verify)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.GET("/session", middleware.RateLimitByIP(2, 10), handler.Session)
		auth.POST("/logout", middleware.RateLimitByIP(1, 5), handler.Logout)
	}
}
