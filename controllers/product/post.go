package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/models"
)

// CreateProduct inserts a new product from its wire DTO and returns the DTO
// with the assigned id.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto models.ProductDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			ProductName: dto.ProductName,
			Price:       dto.Price,
			Brand:       dto.Brand,
			CategoryID:  dto.CategoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		dto.ID = product.ID
		c.JSON(http.StatusCreated, dto)
	}
}
