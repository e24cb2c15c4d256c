package project

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
	projects := r.Group("/projects")
	projects.Use(auth)
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		projects.GET("/options", middleware.RateLimitByUser(5, 20), handler.GetOptions)
		projects.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		projects.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		projects.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		projects.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
