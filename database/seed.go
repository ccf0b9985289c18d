package database

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/models"
)

// Seed inserts the fixed demo rows once. The presence check on the seeded
// cashier ids keeps repeated startups from duplicating anything.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cashier{}).Where("id IN ?", []uint{1, 2, 3}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	paidOn := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	cashiers := []models.Cashier{
		{ID: 1, FirstName: "Jack", LastName: "Sprat"},
		{ID: 2, FirstName: "Maya", LastName: "Ortiz"},
		{ID: 3, FirstName: "Ben", LastName: "Carter"},
	}

	categories := []models.Category{
		{ID: 1, CategoryName: "Food"},
		{ID: 2, CategoryName: "Beverage"},
		{ID: 3, CategoryName: "Misc"},
	}

	products := []models.Product{
		{ID: 1, CategoryID: 1, ProductName: "Pizza", Price: decimal.NewFromFloat(10.99), Brand: "Domino's"},
		{ID: 2, CategoryID: 1, ProductName: "Burger", Price: decimal.NewFromFloat(7.99), Brand: "McDonald's"},
		{ID: 3, CategoryID: 2, ProductName: "Soda", Price: decimal.NewFromFloat(2.99), Brand: "Pepsi"},
		{ID: 4, CategoryID: 3, ProductName: "Chocolate Bar", Price: decimal.NewFromFloat(3.49), Brand: "Hershey"},
	}

	orders := []models.Order{
		{ID: 1, CashierID: 1, PaidOnDate: &paidOn},
		{ID: 2, CashierID: 2, PaidOnDate: &paidOn},
		{ID: 3, CashierID: 3, PaidOnDate: &paidOn},
		{ID: 4, CashierID: 1, PaidOnDate: &paidOn},
	}

	orderProducts := []models.OrderProduct{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2},
		{ID: 2, OrderID: 1, ProductID: 2, Quantity: 1},
		{ID: 3, OrderID: 2, ProductID: 3, Quantity: 3},
		{ID: 4, OrderID: 3, ProductID: 4, Quantity: 1},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cashiers).Error; err != nil {
			return err
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}
		if err := tx.Create(&orderProducts).Error; err != nil {
			return err
		}
		return bumpSequences(tx)
	})
	if err != nil {
		return err
	}

	log.Println("✅ Seed data inserted")
	return nil
}

// bumpSequences moves each id sequence past the seeded max so rows created
// at runtime never collide with the fixed seed ids. Postgres only: SQLite
// assigns max(id)+1 on its own.
func bumpSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"cashiers", "categories", "products", "orders", "order_products"} {
		q := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), (SELECT MAX(id) FROM " + table + "))"
		if err := tx.Exec(q).Error; err != nil {
			return err
		}
	}
	return nil
}
