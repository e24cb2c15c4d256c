package dashboard

import (
	"github.com/indocarisinternational/admin-caris/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, logger *zap.Logger) {
	r.GET("/dashboard",
		auth,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(5, 20),
		handler.Get,
	)
}
