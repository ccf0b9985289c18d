package models

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string    `gorm:"unique;not null" json:"categoryName" binding:"required"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
