package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/cornerstore/pos-api/controllers/product"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		// List products, optionally filtered with ?search=
		products.GET("", productControllers.GetProducts(db))

		// Fetch a single product
		products.GET("/:id", productControllers.GetProductByID(db))

		// Add a product
		products.POST("", productControllers.CreateProduct(db))

		// Replace a product's fields
		products.PUT("/:id", productControllers.UpdateProduct(db))
	}

	categories := api.Group("/categories")
	{
		// List categories with their products
		categories.GET("", productControllers.GetAllCategoriesWithProducts(db))

		// Add a category
		categories.POST("", productControllers.CreateCategory(db))
	}
}
