package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/cornerstore/pos-api/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// List orders, optionally filtered with ?orderDate=
		orders.GET("", orderControllers.GetOrders(db))

		// Fetch a single order with full details
		orders.GET("/:id", orderControllers.GetOrderByID(db))

		// Create an order with its line items
		orders.POST("", orderControllers.CreateOrder(db))

		// Delete an order and its line items
		orders.DELETE("/:id", orderControllers.DeleteOrder(db))
	}
}
