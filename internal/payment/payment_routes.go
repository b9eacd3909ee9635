package payment

import (
	"github.com/louiscollinsjr/miere-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the intent endpoint at its public path, outside
// the versioned API group; the storefront client posts to it directly.
func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/api/create-payment-intent", middleware.CartSession(), handler.CreateIntent)
}
