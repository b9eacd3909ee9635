package profile

import (
	"github.com/louiscollinsjr/miere-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	profiles := r.Group("/profile")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("", handler.Get)
	}
}
