package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecomsynth/ecomsynth/internal/dataset"
	"github.com/ecomsynth/ecomsynth/internal/model"
)

// TableCount reports how many rows one table received during a load.
type TableCount struct {
	Table string
	Rows  int64
}

// LoadDataset bulk-inserts the dataset in foreign-key dependency order:
// customers, products, orders, order_items, payments. Each table loads
// inside its own transaction; a constraint violation (missing parent,
// duplicate primary key) rolls that table back and fails the load.
//
// After each table the inserted row count is verified against the input
// record count. A mismatch is fatal: it means the ingestion is not
// trustworthy, matching the fail-fast posture of the rest of the pipeline.
func (s *Store) LoadDataset(ctx context.Context, d *dataset.Dataset) ([]TableCount, error) {
	loads := []struct {
		table string
		n     int
		fn    func(context.Context, *sql.Tx) error
	}{
		{"customers", len(d.Customers), func(ctx context.Context, tx *sql.Tx) error {
			return insertCustomers(ctx, tx, d.Customers)
		}},
		{"products", len(d.Products), func(ctx context.Context, tx *sql.Tx) error {
			return insertProducts(ctx, tx, d.Products)
		}},
		{"orders", len(d.Orders), func(ctx context.Context, tx *sql.Tx) error {
			return insertOrders(ctx, tx, d.Orders)
		}},
		{"order_items", len(d.Items), func(ctx context.Context, tx *sql.Tx) error {
			return insertItems(ctx, tx, d.Items)
		}},
		{"payments", len(d.Payments), func(ctx context.Context, tx *sql.Tx) error {
			return insertPayments(ctx, tx, d.Payments)
		}},
	}

	counts := make([]TableCount, 0, len(loads))
	for _, l := range loads {
		if err := s.loadTable(ctx, l.table, l.fn); err != nil {
			return nil, err
		}
		got, err := s.Count(ctx, l.table)
		if err != nil {
			return nil, err
		}
		if got != int64(l.n) {
			return nil, fmt.Errorf("row count mismatch for %s: read %d records, table holds %d rows", l.table, l.n, got)
		}
		counts = append(counts, TableCount{Table: l.table, Rows: got})
	}
	return counts, nil
}

func (s *Store) loadTable(ctx context.Context, table string, fn func(context.Context, *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("load %s: begin: %w", table, err)
	}
	if err := fn(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("load %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("load %s: commit: %w", table, err)
	}
	return nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx, customers []model.Customer) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (customer_id, name, email, city, country)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx, c.CustomerID, c.Name, c.Email, c.City, c.Country); err != nil {
			return fmt.Errorf("customer %s: %w", c.CustomerID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []model.Product) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (product_id, name, category, price)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range products {
		price, _ := p.Price.Float64()
		if _, err := stmt.ExecContext(ctx, p.ProductID, p.Name, p.Category, price); err != nil {
			return fmt.Errorf("product %s: %w", p.ProductID, err)
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []model.Order) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO orders (order_id, customer_id, order_date, status)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, o := range orders {
		if _, err := stmt.ExecContext(ctx, o.OrderID, o.CustomerID, o.OrderDate.Format(model.DateLayout), o.Status); err != nil {
			return fmt.Errorf("order %s: %w", o.OrderID, err)
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, items []model.OrderItem) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (item_id, order_id, product_id, quantity)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.ItemID, it.OrderID, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("order item %s: %w", it.ItemID, err)
		}
	}
	return nil
}

func insertPayments(ctx context.Context, tx *sql.Tx, payments []model.Payment) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO payments (payment_id, order_id, amount, mode, status, payment_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range payments {
		amount, _ := p.Amount.Float64()
		if _, err := stmt.ExecContext(ctx, p.PaymentID, p.OrderID, amount, p.Mode, p.Status, p.PaymentDate.Format(model.DateLayout)); err != nil {
			return fmt.Errorf("payment %s: %w", p.PaymentID, err)
		}
	}
	return nil
}
