// Package gen produces referentially consistent synthetic e-commerce fixture
// data from an explicit seed.
package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive integer interval sampled uniformly.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r Range) valid() bool { return r.Min >= 1 && r.Min <= r.Max }

// Config controls one generation run. All ranges are inclusive.
// A zero Seed means "not reproducible": the generator picks a time-derived
// seed and records it in the manifest.
type Config struct {
	Customers          int     `yaml:"customers"`
	Products           int     `yaml:"products"`
	OrdersPerCustomer  Range   `yaml:"orders_per_customer"`
	ItemsPerOrder      Range   `yaml:"items_per_order"`
	Quantity           Range   `yaml:"quantity"`
	PricePaise         Range   `yaml:"price_paise"`
	PaymentFailureRate float64 `yaml:"payment_failure_rate"`
	Seed               int64   `yaml:"seed"`
}

// DefaultConfig returns the stock fixture sizing: 500 customers, 200
// products, 1-3 orders each, 1-5 items per order, prices between
// 199.00 and 19999.00.
func DefaultConfig() Config {
	return Config{
		Customers:          500,
		Products:           200,
		OrdersPerCustomer:  Range{Min: 1, Max: 3},
		ItemsPerOrder:      Range{Min: 1, Max: 5},
		Quantity:           Range{Min: 1, Max: 5},
		PricePaise:         Range{Min: 19_900, Max: 1_999_900},
		PaymentFailureRate: 0.10,
	}
}

// LoadConfig reads a YAML config file on top of the defaults, so a partial
// file only overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a consistent dataset.
func (c Config) Validate() error {
	if c.Customers < 1 {
		return fmt.Errorf("customers must be >= 1, got %d", c.Customers)
	}
	if c.Products < 1 {
		return fmt.Errorf("products must be >= 1, got %d", c.Products)
	}
	if !c.OrdersPerCustomer.valid() {
		return fmt.Errorf("orders_per_customer range [%d,%d] invalid", c.OrdersPerCustomer.Min, c.OrdersPerCustomer.Max)
	}
	if !c.ItemsPerOrder.valid() {
		return fmt.Errorf("items_per_order range [%d,%d] invalid", c.ItemsPerOrder.Min, c.ItemsPerOrder.Max)
	}
	if !c.Quantity.valid() {
		return fmt.Errorf("quantity range [%d,%d] invalid", c.Quantity.Min, c.Quantity.Max)
	}
	if !c.PricePaise.valid() {
		return fmt.Errorf("price_paise range [%d,%d] invalid", c.PricePaise.Min, c.PricePaise.Max)
	}
	if c.PaymentFailureRate < 0 || c.PaymentFailureRate > 1 {
		return fmt.Errorf("payment_failure_rate must be in [0,1], got %g", c.PaymentFailureRate)
	}
	return nil
}
