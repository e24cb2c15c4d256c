package assignment

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
	assignments := r.Group("/assignments")
	assignments.Use(auth)
	assignments.Use(middleware.ContextLogger(logger))
	{
		assignments.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		assignments.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		assignments.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		assignments.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		assignments.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
