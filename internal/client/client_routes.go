package client

import (
	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	clients := r.Group("/clients")
	clients.Use(auth)
	clients.Use(middleware.ContextLogger(logger))
	{
		clients.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		clients.GET("/options", middleware.RateLimitByUser(5, 20), handler.GetOptions)
		clients.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		clients.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		clients.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		clients.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
