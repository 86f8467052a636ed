package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecomsynth/ecomsynth/internal/dataset"
	"github.com/ecomsynth/ecomsynth/internal/model"
)

// createTestStore opens a fresh on-disk store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDataset builds a minimal consistent dataset: two customers, two
// products, two single-line orders with matching payments.
func createTestDataset() *dataset.Dataset {
	d1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	return &dataset.Dataset{
		Customers: []model.Customer{
			{CustomerID: "CUST00001", Name: "Asha Verma", Email: "asha.verma@example.net", City: "Mumbai", Country: "India"},
			{CustomerID: "CUST00002", Name: "Rahul Nair", Email: "rahul.nair@example.net", City: "Kochi", Country: "India"},
		},
		Products: []model.Product{
			{ProductID: "PROD00001", Name: "Premium Watch", Category: "Electronics", Price: decimal.RequireFromString("1999.00")},
			{ProductID: "PROD00002", Name: "Daily Bottle", Category: "Home & Kitchen", Price: decimal.RequireFromString("249.50")},
		},
		Orders: []model.Order{
			{OrderID: "ORD000001", CustomerID: "CUST00001", OrderDate: d1, Status: "Delivered"},
			{OrderID: "ORD000002", CustomerID: "CUST00002", OrderDate: d2, Status: "Shipped"},
		},
		Items: []model.OrderItem{
			{ItemID: "ITEM000001", OrderID: "ORD000001", ProductID: "PROD00001", Quantity: 2},
			{ItemID: "ITEM000002", OrderID: "ORD000002", ProductID: "PROD00002", Quantity: 3},
		},
		Payments: []model.Payment{
			{PaymentID: "PAY000001", OrderID: "ORD000001", Amount: decimal.RequireFromString("3998.00"), Mode: "UPI", Status: model.PaymentSuccess, PaymentDate: d1.AddDate(0, 0, 1)},
			{PaymentID: "PAY000002", OrderID: "ORD000002", Amount: decimal.RequireFromString("748.50"), Mode: "COD", Status: model.PaymentFailed, PaymentDate: d2.AddDate(0, 0, 1)},
		},
	}
}
