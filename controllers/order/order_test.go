package ordercontroller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cornerstore/pos-api/database"
	"github.com/cornerstore/pos-api/models"
	"github.com/cornerstore/pos-api/routes"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getOrder(t *testing.T, r *gin.Engine, id uint) models.Order {
	t.Helper()
	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET order %d status = %d, want 200: %s", id, w.Code, w.Body.String())
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	return order
}

func TestGetSeededOrderWithDetails(t *testing.T) {
	r, _ := setupTest(t)

	order := getOrder(t, r, 1)
	if order.Cashier == nil || order.Cashier.FirstName != "Jack" {
		t.Errorf("order 1 cashier not expanded: %+v", order.Cashier)
	}
	if len(order.OrderProducts) != 2 {
		t.Fatalf("order 1 has %d line items, want 2 seeded", len(order.OrderProducts))
	}
	for _, op := range order.OrderProducts {
		if op.Product == nil {
			t.Fatalf("line item %d missing product", op.ID)
		}
		if op.Product.Category == nil {
			t.Errorf("product %d missing expanded category", op.Product.ID)
		}
	}

	// 2×10.99 + 1×7.99
	want := decimal.RequireFromString("29.97")
	if !order.Total.Equal(want) {
		t.Errorf("order 1 total = %s, want %s", order.Total, want)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodGet, "/api/orders/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetOrdersFilterByDate(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodGet, "/api/orders?orderDate=2024-12-01", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var orders []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("got %d orders on 2024-12-01, want 4 seeded", len(orders))
	}
	for _, o := range orders {
		if o.Cashier == nil {
			t.Errorf("order %d missing expanded cashier", o.ID)
		}
	}

	w = doRequest(t, r, http.MethodGet, "/api/orders?orderDate=2030-01-01", nil)
	orders = nil
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("got %d orders on 2030-01-01, want 0", len(orders))
	}
}

func TestGetOrdersBadDate(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodGet, "/api/orders?orderDate=yesterday", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrderWithLineItems(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/orders", gin.H{
		"cashierId":  1,
		"paidOnDate": "2025-03-10T00:00:00Z",
		"orderProducts": []gin.H{
			{"productId": 1, "quantity": 2},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created models.OrderDTO
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created order has no assigned id")
	}
	if created.CashierID != 1 {
		t.Errorf("cashierId = %d, want 1", created.CashierID)
	}
	if len(created.OrderProducts) != 1 || created.OrderProducts[0].ID == 0 {
		t.Fatalf("line items not reloaded with ids: %+v", created.OrderProducts)
	}

	// 2×10.99
	want := decimal.RequireFromString("21.98")
	if !created.Total.Equal(want) {
		t.Errorf("created total = %s, want %s", created.Total, want)
	}

	fetched := getOrder(t, r, created.ID)
	if !fetched.Total.Equal(want) {
		t.Errorf("fetched total = %s, want %s", fetched.Total, want)
	}
}

func TestCreateOrderWithoutLineItems(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/orders", gin.H{"cashierId": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created models.OrderDTO
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(created.OrderProducts) != 0 {
		t.Errorf("got %d line items, want 0", len(created.OrderProducts))
	}
	if !created.Total.IsZero() {
		t.Errorf("total = %s, want 0", created.Total)
	}
}

func TestCreateOrderMissingCashier(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/orders", gin.H{
		"orderProducts": []gin.H{{"productId": 1, "quantity": 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOrderTotalFollowsPriceChange(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodPut, "/api/products/1", gin.H{
		"productName": "Pizza",
		"price":       "20.00",
		"brand":       "Domino's",
		"categoryId":  1,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("price update status = %d, want 204", w.Code)
	}

	// seeded order 1 (2×pizza + 1×burger) now reflects the new pizza price
	order := getOrder(t, r, 1)
	want := decimal.RequireFromString("47.99")
	if !order.Total.Equal(want) {
		t.Errorf("order 1 total after price change = %s, want %s", order.Total, want)
	}
}

func TestDeleteOrder(t *testing.T) {
	r, db := setupTest(t)

	w := doRequest(t, r, http.MethodDelete, "/api/orders/2", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, "/api/orders/2", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want 404", w.Code)
	}

	var remaining int64
	if err := db.Model(&models.OrderProduct{}).Where("order_id = ?", 2).Count(&remaining).Error; err != nil {
		t.Fatalf("count line items: %v", err)
	}
	if remaining != 0 {
		t.Errorf("order 2 still has %d line items after delete", remaining)
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	r, _ := setupTest(t)

	w := doRequest(t, r, http.MethodDelete, "/api/orders/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
