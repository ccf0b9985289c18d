package models

type Cashier struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"not null" json:"firstName" binding:"required"`
	LastName  string  `gorm:"not null" json:"lastName" binding:"required"`
	Orders    []Order `gorm:"foreignKey:CashierID" json:"orders,omitempty"`
}
