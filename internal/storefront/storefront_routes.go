package storefront

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/catalog/refresh", handler.RefreshCatalog)
	r.GET("/products", handler.ListProducts)
	r.GET("/categories", handler.ListCategories)

	cart := r.Group("/cart")
	{
		cart.GET("", handler.GetCart)
		cart.POST("/items", handler.AddItem)
		cart.PATCH("/items/:id", handler.UpdateQuantity)
		cart.DELETE("/items/:id", handler.RemoveItem)
	}

	r.POST("/checkout", handler.Checkout)

	view := r.Group("/view")
	{
		view.PUT("/filter", handler.SetFilter)
		view.PUT("/page-size", handler.SetPageSize)
		view.POST("/next-page", handler.NextPage)
		view.POST("/prev-page", handler.PrevPage)
	}
}
