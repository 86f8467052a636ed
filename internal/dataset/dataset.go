// Package dataset holds the in-memory fixture collections and their on-disk
// CSV representation. The five entity files plus manifest.yaml together form
// one generated dataset.
package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecomsynth/ecomsynth/internal/model"
)

// Table names in foreign-key dependency order. Children always follow their
// parents so the loader can insert front-to-back and drop back-to-front.
var TableOrder = []string{"customers", "products", "orders", "order_items", "payments"}

// Dataset is one complete generation run held in memory.
type Dataset struct {
	Customers []model.Customer
	Products  []model.Product
	Orders    []model.Order
	Items     []model.OrderItem
	Payments  []model.Payment
}

// Counts returns per-table row counts keyed by table name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"customers":   len(d.Customers),
		"products":    len(d.Products),
		"orders":      len(d.Orders),
		"order_items": len(d.Items),
		"payments":    len(d.Payments),
	}
}

// Validate checks the referential and financial invariants of the dataset:
//
//   - every Order references an existing Customer
//   - every OrderItem references an existing Order and Product
//   - every Order has at least one OrderItem
//   - every Order has exactly one Payment whose amount equals the exact
//     decimal sum of quantity x price over the order's items
//
// The amount check is exact, not approximate. A dataset that fails Validate
// must not be written to disk.
func (d *Dataset) Validate() error {
	customers := make(map[string]bool, len(d.Customers))
	for _, c := range d.Customers {
		customers[c.CustomerID] = true
	}
	prices := make(map[string]decimal.Decimal, len(d.Products))
	for _, p := range d.Products {
		prices[p.ProductID] = p.Price
	}
	orders := make(map[string]bool, len(d.Orders))
	for _, o := range d.Orders {
		if !customers[o.CustomerID] {
			return fmt.Errorf("order %s references unknown customer %s", o.OrderID, o.CustomerID)
		}
		orders[o.OrderID] = true
	}

	totals := make(map[string]decimal.Decimal, len(d.Orders))
	itemsPerOrder := make(map[string]int, len(d.Orders))
	for _, it := range d.Items {
		if !orders[it.OrderID] {
			return fmt.Errorf("order item %s references unknown order %s", it.ItemID, it.OrderID)
		}
		price, ok := prices[it.ProductID]
		if !ok {
			return fmt.Errorf("order item %s references unknown product %s", it.ItemID, it.ProductID)
		}
		line := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		totals[it.OrderID] = totals[it.OrderID].Add(line)
		itemsPerOrder[it.OrderID]++
	}

	paid := make(map[string]bool, len(d.Payments))
	for _, p := range d.Payments {
		if !orders[p.OrderID] {
			return fmt.Errorf("payment %s references unknown order %s", p.PaymentID, p.OrderID)
		}
		if paid[p.OrderID] {
			return fmt.Errorf("order %s has more than one payment", p.OrderID)
		}
		paid[p.OrderID] = true
		if want := totals[p.OrderID]; !p.Amount.Equal(want) {
			return fmt.Errorf("payment %s amount %s does not match order %s item total %s",
				p.PaymentID, p.Amount, p.OrderID, want)
		}
	}

	for _, o := range d.Orders {
		if itemsPerOrder[o.OrderID] == 0 {
			return fmt.Errorf("order %s has no items", o.OrderID)
		}
		if !paid[o.OrderID] {
			return fmt.Errorf("order %s has no payment", o.OrderID)
		}
	}
	return nil
}
