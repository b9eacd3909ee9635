package cart

import (
	"github.com/louiscollinsjr/miere-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.CartSession())
	{
		carts.GET("", handler.Detail)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("/:productId", handler.UpdateQty)
			items.DELETE("/:productId", handler.DeleteItem)
		}
	}
}
