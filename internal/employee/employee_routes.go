package employee

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
	employees := r.Group("/employees")
	employees.Use(auth)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		employees.GET("/options", middleware.RateLimitByUser(5, 20), handler.GetOptions)
		employees.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		employees.GET("/:id/profile.pdf", middleware.RateLimitByUser(1, 3), handler.ProfilePDF)
		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		employees.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
