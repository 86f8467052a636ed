package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecomsynth/ecomsynth/internal/model"
)

// CSV file names, one per entity table.
const (
	CustomersFile = "customers.csv"
	ProductsFile  = "products.csv"
	OrdersFile    = "orders.csv"
	ItemsFile     = "order_items.csv"
	PaymentsFile  = "payments.csv"
)

// FileForTable maps a table name to its CSV file name.
var FileForTable = map[string]string{
	"customers":   CustomersFile,
	"products":    ProductsFile,
	"orders":      OrdersFile,
	"order_items": ItemsFile,
	"payments":    PaymentsFile,
}

// Column headers, written as the first row of each file.
var (
	customerHeader = []string{"customer_id", "name", "email", "city", "country"}
	productHeader  = []string{"product_id", "name", "category", "price"}
	orderHeader    = []string{"order_id", "customer_id", "order_date", "status"}
	itemHeader     = []string{"item_id", "order_id", "product_id", "quantity"}
	paymentHeader  = []string{"payment_id", "order_id", "amount", "mode", "status", "payment_date"}
)

// WriteAll serializes the dataset to dir, creating it if needed. Each entity
// becomes one CSV file with a header row; money is written with two fraction
// digits and dates in ISO form. Any failure aborts immediately; partly
// written output is not valid and callers must treat the run as failed.
func WriteAll(dir string, d *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeFile(dir, CustomersFile, customerHeader, len(d.Customers), func(i int) []string {
		c := d.Customers[i]
		return []string{c.CustomerID, c.Name, c.Email, c.City, c.Country}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, ProductsFile, productHeader, len(d.Products), func(i int) []string {
		p := d.Products[i]
		return []string{p.ProductID, p.Name, p.Category, p.Price.StringFixed(2)}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, OrdersFile, orderHeader, len(d.Orders), func(i int) []string {
		o := d.Orders[i]
		return []string{o.OrderID, o.CustomerID, o.OrderDate.Format(model.DateLayout), o.Status}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, ItemsFile, itemHeader, len(d.Items), func(i int) []string {
		it := d.Items[i]
		return []string{it.ItemID, it.OrderID, it.ProductID, strconv.Itoa(it.Quantity)}
	}); err != nil {
		return err
	}
	return writeFile(dir, PaymentsFile, paymentHeader, len(d.Payments), func(i int) []string {
		p := d.Payments[i]
		return []string{p.PaymentID, p.OrderID, p.Amount.StringFixed(2), p.Mode, p.Status,
			p.PaymentDate.Format(model.DateLayout)}
	})
}

func writeFile(dir, name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			f.Close()
			return fmt.Errorf("write %s row %d: %w", name, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// ReadAll parses the five CSV files from dir back into a typed Dataset.
// Rows are validated through the model constructors, so malformed input is
// rejected here rather than at database load time.
func ReadAll(dir string) (*Dataset, error) {
	d := &Dataset{}
	var err error
	if d.Customers, err = ReadCustomers(filepath.Join(dir, CustomersFile)); err != nil {
		return nil, err
	}
	if d.Products, err = ReadProducts(filepath.Join(dir, ProductsFile)); err != nil {
		return nil, err
	}
	if d.Orders, err = ReadOrders(filepath.Join(dir, OrdersFile)); err != nil {
		return nil, err
	}
	if d.Items, err = ReadItems(filepath.Join(dir, ItemsFile)); err != nil {
		return nil, err
	}
	if d.Payments, err = ReadPayments(filepath.Join(dir, PaymentsFile)); err != nil {
		return nil, err
	}
	return d, nil
}

// ReadCustomers parses a customers CSV file.
func ReadCustomers(path string) ([]model.Customer, error) {
	rows, err := readRows(path, customerHeader)
	if err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(rows))
	for i, r := range rows {
		c, err := model.NewCustomer(r[0], r[1], r[2], r[3], r[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ReadProducts parses a products CSV file.
func ReadProducts(path string) ([]model.Product, error) {
	rows, err := readRows(path, productHeader)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(rows))
	for i, r := range rows {
		price, err := decimal.NewFromString(r[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad price %q: %w", path, i+2, r[3], err)
		}
		p, err := model.NewProduct(r[0], r[1], r[2], price)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ReadOrders parses an orders CSV file.
func ReadOrders(path string) ([]model.Order, error) {
	rows, err := readRows(path, orderHeader)
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(rows))
	for i, r := range rows {
		date, err := time.Parse(model.DateLayout, r[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad order_date %q: %w", path, i+2, r[2], err)
		}
		o, err := model.NewOrder(r[0], r[1], date, r[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// ReadItems parses an order_items CSV file.
func ReadItems(path string) ([]model.OrderItem, error) {
	rows, err := readRows(path, itemHeader)
	if err != nil {
		return nil, err
	}
	out := make([]model.OrderItem, 0, len(rows))
	for i, r := range rows {
		qty, err := strconv.Atoi(r[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad quantity %q: %w", path, i+2, r[3], err)
		}
		it, err := model.NewOrderItem(r[0], r[1], r[2], qty)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, it)
	}
	return out, nil
}

// ReadPayments parses a payments CSV file.
func ReadPayments(path string) ([]model.Payment, error) {
	rows, err := readRows(path, paymentHeader)
	if err != nil {
		return nil, err
	}
	out := make([]model.Payment, 0, len(rows))
	for i, r := range rows {
		amount, err := decimal.NewFromString(r[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad amount %q: %w", path, i+2, r[2], err)
		}
		date, err := time.Parse(model.DateLayout, r[5])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad payment_date %q: %w", path, i+2, r[5], err)
		}
		p, err := model.NewPayment(r[0], r[1], amount, r[3], r[4], date)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// readRows reads all records from path, verifies the header row matches
// the expected column set, and returns the data rows.
func readRows(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, col := range header {
		if records[0][i] != col {
			return nil, fmt.Errorf("%s: header column %d is %q, want %q", path, i+1, records[0][i], col)
		}
	}
	return records[1:], nil
}
