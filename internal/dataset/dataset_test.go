package dataset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomsynth/ecomsynth/internal/model"
)

// sampleDataset builds a small hand-written dataset that satisfies every
// integrity invariant: two customers, two products, one order each with a
// single line, payments matching the line totals exactly.
func sampleDataset(t *testing.T) *Dataset {
	t.Helper()

	mk := func(v any, err error) any {
		require.NoError(t, err)
		return v
	}

	c1 := mk(model.NewCustomer("CUST00001", "Asha Verma", "asha.verma@example.net", "Mumbai", "India")).(model.Customer)
	c2 := mk(model.NewCustomer("CUST00002", "Rahul Nair", "rahul.nair@example.net", "Kochi", "India")).(model.Customer)

	p1 := mk(model.NewProduct("PROD00001", "Premium Watch", "Electronics", decimal.RequireFromString("1999.00"))).(model.Product)
	p2 := mk(model.NewProduct("PROD00002", "Daily Bottle", "Home & Kitchen", decimal.RequireFromString("249.50"))).(model.Product)

	d1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	o1 := mk(model.NewOrder("ORD000001", "CUST00001", d1, "Delivered")).(model.Order)
	o2 := mk(model.NewOrder("ORD000002", "CUST00002", d2, "Shipped")).(model.Order)

	i1 := mk(model.NewOrderItem("ITEM000001", "ORD000001", "PROD00001", 2)).(model.OrderItem)
	i2 := mk(model.NewOrderItem("ITEM000002", "ORD000002", "PROD00002", 3)).(model.OrderItem)

	pay1 := mk(model.NewPayment("PAY000001", "ORD000001", decimal.RequireFromString("3998.00"),
		"UPI", model.PaymentSuccess, d1.AddDate(0, 0, 1))).(model.Payment)
	pay2 := mk(model.NewPayment("PAY000002", "ORD000002", decimal.RequireFromString("748.50"),
		"COD", model.PaymentFailed, d2.AddDate(0, 0, 1))).(model.Payment)

	return &Dataset{
		Customers: []model.Customer{c1, c2},
		Products:  []model.Product{p1, p2},
		Orders:    []model.Order{o1, o2},
		Items:     []model.OrderItem{i1, i2},
		Payments:  []model.Payment{pay1, pay2},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, sampleDataset(t).Validate())
}

func TestValidate_UnknownCustomer(t *testing.T) {
	d := sampleDataset(t)
	d.Orders[0].CustomerID = "CUST99999"
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown customer")
}

func TestValidate_UnknownProduct(t *testing.T) {
	d := sampleDataset(t)
	d.Items[0].ProductID = "PROD99999"
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown product")
}

func TestValidate_UnknownOrderOnItem(t *testing.T) {
	d := sampleDataset(t)
	d.Items[0].OrderID = "ORD999999"
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order")
}

func TestValidate_AmountMismatch(t *testing.T) {
	d := sampleDataset(t)
	d.Payments[0].Amount = decimal.RequireFromString("3998.01")
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestValidate_OrderWithoutItems(t *testing.T) {
	d := sampleDataset(t)
	d.Items = d.Items[:1] // ORD000002 loses its only line
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match") // its payment total is now stale
}

func TestValidate_OrderWithoutPayment(t *testing.T) {
	d := sampleDataset(t)
	d.Payments = d.Payments[:1]
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no payment")
}

func TestValidate_DuplicatePayment(t *testing.T) {
	d := sampleDataset(t)
	dup := d.Payments[0]
	dup.PaymentID = "PAY000099"
	d.Payments = append(d.Payments, dup)
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one payment")
}

func TestCounts(t *testing.T) {
	d := sampleDataset(t)
	counts := d.Counts()
	for _, table := range TableOrder {
		assert.Equal(t, 2, counts[table], table)
	}
}
