package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/models"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CashierID     uint               `json:"cashierId" binding:"required"`
	PaidOnDate    *time.Time         `json:"paidOnDate"`
	OrderProducts []OrderItemRequest `json:"orderProducts"`
}

type OrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// -------- Helpers --------

// parseOrderDate accepts a plain calendar date and falls back to RFC3339,
// keeping only the date portion either way.
func parseOrderDate(raw string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid orderDate, expected YYYY-MM-DD")
	}
	return d.Truncate(24 * time.Hour), nil
}

// -------- Handlers --------

// GetOrderByID returns one order with cashier, line items, products, and
// product categories expanded, plus the derived total.
// URL param: /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Cashier").
			Preload("OrderProducts").
			Preload("OrderProducts.Product").
			Preload("OrderProducts.Product.Category").
			First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		order.ComputeTotal()
		c.JSON(http.StatusOK, order)
	}
}

// GetOrders lists orders with cashier and line items expanded, optionally
// filtered to those paid on a given calendar date (time of day ignored).
// Query param: ?orderDate=YYYY-MM-DD
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("Cashier").
			Preload("OrderProducts").
			Preload("OrderProducts.Product")

		if raw := c.Query("orderDate"); raw != "" {
			d, err := parseOrderDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// DATE() works on both Postgres and SQLite
			query = query.Where("DATE(paid_on_date) = ?", d.Format("2006-01-02"))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		for i := range orders {
			orders[i].ComputeTotal()
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CreateOrder creates an order and its line items as one transaction, then
// reloads the cashier and line items so the response carries store-assigned
// ids and the derived total.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			CashierID:  req.CashierID,
			PaidOnDate: req.PaidOnDate,
		}
		for _, item := range req.OrderProducts {
			order.OrderProducts = append(order.OrderProducts, models.OrderProduct{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		if err := db.
			Preload("Cashier").
			Preload("OrderProducts").
			Preload("OrderProducts.Product").
			First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload order"})
			return
		}

		order.ComputeTotal()
		c.JSON(http.StatusCreated, models.OrderDTO{
			ID:            order.ID,
			CashierID:     order.CashierID,
			OrderProducts: order.OrderProducts,
			Total:         order.Total,
			PaidOnDate:    order.PaidOnDate,
		})
	}
}

// DeleteOrder removes an order and its line items. Responds 204 on success.
// URL param: /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
