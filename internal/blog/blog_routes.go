package blog

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
	blogs := r.Group("/blogs")
	blogs.Use(auth)
	blogs.Use(middleware.ContextLogger(logger))
	{
		blogs.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		blogs.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		blogs.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		blogs.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		blogs.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
