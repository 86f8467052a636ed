package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("CUST00001", "Asha Verma", "asha@example.net", "Mumbai", "India")
	require.NoError(t, err)
	assert.Equal(t, "CUST00001", c.CustomerID)

	_, err = NewCustomer("", "Asha Verma", "asha@example.net", "Mumbai", "India")
	assert.Error(t, err)

	_, err = NewCustomer("CUST00001", "", "asha@example.net", "Mumbai", "India")
	assert.Error(t, err)

	_, err = NewCustomer("CUST00001", "Asha Verma", "", "Mumbai", "India")
	assert.Error(t, err)
}

func TestNewProduct_RejectsNonPositivePrice(t *testing.T) {
	_, err := NewProduct("PROD00001", "Premium Watch", "Electronics", decimal.Zero)
	assert.Error(t, err)

	_, err = NewProduct("PROD00001", "Premium Watch", "Electronics", decimal.NewFromInt(-5))
	assert.Error(t, err)

	p, err := NewProduct("PROD00001", "Premium Watch", "Electronics", decimal.RequireFromString("1999.00"))
	require.NoError(t, err)
	assert.Equal(t, "1999.00", p.Price.StringFixed(2))
}

func TestNewOrder(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	o, err := NewOrder("ORD000001", "CUST00001", date, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, "CUST00001", o.CustomerID)

	_, err = NewOrder("ORD000001", "", date, "Delivered")
	assert.Error(t, err)

	_, err = NewOrder("ORD000001", "CUST00001", time.Time{}, "Delivered")
	assert.Error(t, err)
}

func TestNewOrderItem_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewOrderItem("ITEM000001", "ORD000001", "PROD00001", 0)
	assert.Error(t, err)

	_, err = NewOrderItem("ITEM000001", "ORD000001", "PROD00001", -1)
	assert.Error(t, err)

	it, err := NewOrderItem("ITEM000001", "ORD000001", "PROD00001", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Quantity)
}

func TestNewPayment(t *testing.T) {
	date := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("3998.00")

	p, err := NewPayment("PAY000001", "ORD000001", amount, "UPI", PaymentSuccess, date)
	require.NoError(t, err)
	assert.Equal(t, "3998.00", p.Amount.StringFixed(2))

	// A failed payment still records its amount.
	p, err = NewPayment("PAY000001", "ORD000001", amount, "COD", PaymentFailed, date)
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, p.Status)

	_, err = NewPayment("PAY000001", "ORD000001", amount, "UPI", "Refunded", date)
	assert.Error(t, err)

	_, err = NewPayment("PAY000001", "ORD000001", decimal.NewFromInt(-1), "UPI", PaymentSuccess, date)
	assert.Error(t, err)

	// Zero amount is allowed: it models a failed payment with nothing captured.
	_, err = NewPayment("PAY000001", "ORD000001", decimal.Zero, "UPI", PaymentFailed, date)
	assert.NoError(t, err)
}
