package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO date format used in CSV files and the database.
const DateLayout = "2006-01-02"

// ProductCategories is the fixed catalog taxonomy.
var ProductCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Kitchen",
	"Beauty",
	"Sports",
	"Books",
	"Grocery",
	"Toys",
}

// OrderStatuses enumerates the order fulfillment states.
var OrderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}

// PaymentModes enumerates the accepted payment instruments.
var PaymentModes = []string{"UPI", "Credit Card", "Debit Card", "Net Banking", "Wallet", "COD"}

// Payment status values. The recorded amount is independent of status:
// a failed payment still carries the full order total.
const (
	PaymentSuccess = "Success"
	PaymentFailed  = "Failed"
)

// Customer is an immutable buyer record.
type Customer struct {
	CustomerID string
	Name       string
	Email      string
	City       string
	Country    string
}

// NewCustomer validates and constructs a Customer.
func NewCustomer(id, name, email, city, country string) (Customer, error) {
	if id == "" {
		return Customer{}, fmt.Errorf("customer: empty customer_id")
	}
	if name == "" {
		return Customer{}, fmt.Errorf("customer %s: empty name", id)
	}
	if email == "" {
		return Customer{}, fmt.Errorf("customer %s: empty email", id)
	}
	return Customer{CustomerID: id, Name: name, Email: email, City: city, Country: country}, nil
}

// Product is an immutable catalog entry.
type Product struct {
	ProductID string
	Name      string
	Category  string
	Price     decimal.Decimal
}

// NewProduct validates and constructs a Product. Price must be positive.
func NewProduct(id, name, category string, price decimal.Decimal) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product: empty product_id")
	}
	if name == "" {
		return Product{}, fmt.Errorf("product %s: empty name", id)
	}
	if !price.IsPositive() {
		return Product{}, fmt.Errorf("product %s: non-positive price %s", id, price)
	}
	return Product{ProductID: id, Name: name, Category: category, Price: price}, nil
}

// Order belongs to exactly one Customer.
type Order struct {
	OrderID    string
	CustomerID string
	OrderDate  time.Time
	Status     string
}

// NewOrder validates and constructs an Order.
func NewOrder(id, customerID string, orderDate time.Time, status string) (Order, error) {
	if id == "" {
		return Order{}, fmt.Errorf("order: empty order_id")
	}
	if customerID == "" {
		return Order{}, fmt.Errorf("order %s: empty customer_id", id)
	}
	if orderDate.IsZero() {
		return Order{}, fmt.Errorf("order %s: zero order_date", id)
	}
	return Order{OrderID: id, CustomerID: customerID, OrderDate: orderDate, Status: status}, nil
}

// OrderItem is one line of an Order, referencing a Product.
type OrderItem struct {
	ItemID    string
	OrderID   string
	ProductID string
	Quantity  int
}

// NewOrderItem validates and constructs an OrderItem. Quantity must be positive.
func NewOrderItem(id, orderID, productID string, quantity int) (OrderItem, error) {
	if id == "" {
		return OrderItem{}, fmt.Errorf("order item: empty item_id")
	}
	if orderID == "" {
		return OrderItem{}, fmt.Errorf("order item %s: empty order_id", id)
	}
	if productID == "" {
		return OrderItem{}, fmt.Errorf("order item %s: empty product_id", id)
	}
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("order item %s: non-positive quantity %d", id, quantity)
	}
	return OrderItem{ItemID: id, OrderID: orderID, ProductID: productID, Quantity: quantity}, nil
}

// Payment settles exactly one Order. Amount carries the exact sum of the
// order's line totals regardless of Status.
type Payment struct {
	PaymentID   string
	OrderID     string
	Amount      decimal.Decimal
	Mode        string
	Status      string
	PaymentDate time.Time
}

// NewPayment validates and constructs a Payment.
func NewPayment(id, orderID string, amount decimal.Decimal, mode, status string, paymentDate time.Time) (Payment, error) {
	if id == "" {
		return Payment{}, fmt.Errorf("payment: empty payment_id")
	}
	if orderID == "" {
		return Payment{}, fmt.Errorf("payment %s: empty order_id", id)
	}
	if amount.IsNegative() {
		return Payment{}, fmt.Errorf("payment %s: negative amount %s", id, amount)
	}
	if status != PaymentSuccess && status != PaymentFailed {
		return Payment{}, fmt.Errorf("payment %s: unknown status %q", id, status)
	}
	return Payment{
		PaymentID:   id,
		OrderID:     orderID,
		Amount:      amount,
		Mode:        mode,
		Status:      status,
		PaymentDate: paymentDate,
	}, nil
}
