package cashiercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/models"
)

// GetCashiers returns every cashier as a flat DTO list.
func GetCashiers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cashiers []models.Cashier
		if err := db.Find(&cashiers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cashiers"})
			return
		}

		dtos := make([]models.CashierDTO, 0, len(cashiers))
		for _, cashier := range cashiers {
			dtos = append(dtos, models.CashierDTO{
				ID:        cashier.ID,
				FirstName: cashier.FirstName,
				LastName:  cashier.LastName,
			})
		}
		c.JSON(http.StatusOK, dtos)
	}
}

// CreateCashier inserts a new cashier and echoes it back with the assigned id.
func CreateCashier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cashier models.Cashier
		if err := c.ShouldBindJSON(&cashier); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cashier.ID = 0 // id is always store-assigned

		if err := db.Create(&cashier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cashier"})
			return
		}
		c.JSON(http.StatusCreated, cashier)
	}
}

// GetCashierByID returns one cashier with their orders, each order's line
// items, and each line item's product expanded.
// URL param: /api/cashiers/:id
func GetCashierByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cashier ID"})
			return
		}

		var cashier models.Cashier
		if err := db.
			Preload("Orders").
			Preload("Orders.OrderProducts").
			Preload("Orders.OrderProducts.Product").
			First(&cashier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cashier not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cashier"})
			}
			return
		}

		for i := range cashier.Orders {
			cashier.Orders[i].ComputeTotal()
		}
		c.JSON(http.StatusOK, cashier)
	}
}
