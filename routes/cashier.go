package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cashierControllers "github.com/cornerstore/pos-api/controllers/cashier"
)

func SetupCashierRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cashiers := api.Group("/cashiers")
	{
		// List all cashiers
		cashiers.GET("", cashierControllers.GetCashiers(db))

		// Add a cashier
		cashiers.POST("", cashierControllers.CreateCashier(db))

		// Fetch a cashier with orders, line items, and products
		cashiers.GET("/:id", cashierControllers.GetCashierByID(db))
	}
}
