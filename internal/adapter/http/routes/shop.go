package routes

import (
	"retail_agent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat     = "/chat"
	PathProducts = "/products"
	PathCart     = "/cart"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	chatHandler *handlers.ChatHandler,
	productHandler *handlers.ProductHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
) {
	chat := rg.Group(PathChat)
	{
		chat.POST("", chatHandler.PostMessage)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("/:user_id", cartHandler.GetSummary)
		cart.DELETE("/:user_id", cartHandler.ClearCart)
		cart.POST("/:user_id/discount", cartHandler.ApplyDiscount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items", cartHandler.UpdateItem)
		cart.DELETE("/items", cartHandler.RemoveItem)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:user_id", orderHandler.Checkout)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:user_id", orderHandler.ListOrders)
		orders.GET("/detail/:id", orderHandler.GetOrder)
	}
}
