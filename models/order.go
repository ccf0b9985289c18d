package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CashierID     uint           `gorm:"not null;index" json:"cashierId"`
	Cashier       *Cashier       `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	PaidOnDate    *time.Time     `json:"paidOnDate"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderProducts"`

	// Total is derived from the current line items and product prices on
	// every read. It is never stored, so a later price change shifts the
	// total of existing orders too.
	Total decimal.Decimal `gorm:"-" json:"total"`
}

// ComputeTotal fills Total from the loaded line items. OrderProducts and
// their Product associations must be preloaded first.
func (o *Order) ComputeTotal() {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		if op.Product != nil {
			total = total.Add(op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity))))
		}
	}
	o.Total = total
}
