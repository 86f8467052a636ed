// Package report runs the fixed sales-detail join against the store and
// renders the result as a console table and a CSV file.
package report

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/ecomsynth/ecomsynth/internal/store"
)

//go:embed report.sql
var reportSQL string

// Row is one line of the sales detail report: an (order, item) pair joined
// with its customer, product, and payment.
type Row struct {
	CustomerName    string
	OrderID         string
	OrderDate       string
	ProductName     string
	Category        string
	Quantity        int64
	Price           float64
	TotalItemAmount float64
	PaymentMode     string
}

// Header returns the report column names in output order.
func Header() []string {
	return []string{
		"customer_name", "order_id", "order_date", "product_name", "category",
		"quantity", "price", "total_item_amount", "payment_mode",
	}
}

// Strings renders the row for table and CSV output. Money columns use two
// fraction digits.
func (r Row) Strings() []string {
	return []string{
		r.CustomerName,
		r.OrderID,
		r.OrderDate,
		r.ProductName,
		r.Category,
		strconv.FormatInt(r.Quantity, 10),
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		strconv.FormatFloat(r.TotalItemAmount, 'f', 2, 64),
		r.PaymentMode,
	}
}

// Run executes the report query and materializes the full result set.
// Rows arrive ordered by order_date descending; rows with equal dates keep
// the store's scan order, there is no secondary sort key.
func Run(ctx context.Context, st *store.Store) ([]Row, error) {
	rows, err := st.Query(ctx, reportSQL)
	if err != nil {
		return nil, fmt.Errorf("run report query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.CustomerName, &r.OrderID, &r.OrderDate, &r.ProductName, &r.Category,
			&r.Quantity, &r.Price, &r.TotalItemAmount, &r.PaymentMode,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read report rows: %w", err)
	}
	return out, nil
}
