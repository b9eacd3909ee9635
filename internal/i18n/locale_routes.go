package i18n

import (
	"github.com/louiscollinsjr/miere-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	locale := r.Group("/locale")
	locale.Use(middleware.CartSession(), middleware.OptionalAuthMiddleware())
	{
		locale.GET("", handler.Get)
		locale.PUT("", handler.Set)
	}
}
