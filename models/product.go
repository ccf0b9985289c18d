package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string          `gorm:"not null" json:"productName"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  uint            `gorm:"not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
