package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/models"
)

// GetProducts lists all products, optionally filtered by a case-insensitive
// substring match on the product name.
// Query param: ?search=<text>
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if search := c.Query("search"); search != "" {
			query = query.Where("LOWER(product_name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		dtos := make([]models.ProductDTO, 0, len(products))
		for _, p := range products {
			dtos = append(dtos, models.ProductDTO{
				ID:          p.ID,
				ProductName: p.ProductName,
				Price:       p.Price,
				Brand:       p.Brand,
				CategoryID:  p.CategoryID,
			})
		}
		c.JSON(http.StatusOK, dtos)
	}
}
