package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flattened wire shapes used at the API boundary, decoupled from the gorm
// entities above.

type CashierDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	ProductName string          `json:"productName" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Brand       string          `json:"brand"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
}

type OrderDTO struct {
	ID            uint            `json:"id"`
	CashierID     uint            `json:"cashierId"`
	OrderProducts []OrderProduct  `json:"orderProducts"`
	Total         decimal.Decimal `json:"total"`
	PaidOnDate    *time.Time      `json:"paidOnDate"`
}
