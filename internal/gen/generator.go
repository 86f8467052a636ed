package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/ecomsynth/ecomsynth/internal/dataset"
	"github.com/ecomsynth/ecomsynth/internal/model"
)

// Product name word pools, combined as "Adjective Noun".
var (
	productAdjectives = []string{"Premium", "Classic", "Eco", "Smart", "Urban", "Elite", "Daily"}
	productNouns      = []string{
		"Phone", "Shoes", "Mixer", "Lamp", "Watch",
		"Backpack", "Bottle", "Headphones", "Saree", "Kurta",
	}
)

// Generator produces one Dataset per Generate call. It owns an explicitly
// seeded rand.Rand and faker instance so runs are reproducible; there is no
// ambient global randomness anywhere in the generation path.
type Generator struct {
	cfg   Config
	seed  int64
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

// New builds a Generator for cfg. Order dates fall within the 365 days
// before now. If cfg.Seed is zero a time-derived seed is chosen; Seed()
// reports the seed actually used either way.
func New(cfg Config, now time.Time) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:   cfg,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(seed),
		now:   now,
	}, nil
}

// Seed returns the seed driving this generator.
func (g *Generator) Seed() int64 { return g.seed }

// Generate runs one full pass in strict dependency order: customers,
// products, orders, order items, payments. Every reference points at a
// previously generated row and every payment amount is computed from the
// order's items, so the result always passes dataset.Validate.
func (g *Generator) Generate() (*dataset.Dataset, error) {
	d := &dataset.Dataset{}

	var err error
	if d.Customers, err = g.customers(); err != nil {
		return nil, err
	}
	if d.Products, err = g.products(); err != nil {
		return nil, err
	}
	if d.Orders, err = g.orders(d.Customers); err != nil {
		return nil, err
	}
	var totals map[string]decimal.Decimal
	if d.Items, totals, err = g.items(d.Orders, d.Products); err != nil {
		return nil, err
	}
	if d.Payments, err = g.payments(d.Orders, totals); err != nil {
		return nil, err
	}
	return d, nil
}

func (g *Generator) customers() ([]model.Customer, error) {
	out := make([]model.Customer, 0, g.cfg.Customers)
	seen := make(map[string]bool, g.cfg.Customers)
	for i := 1; i <= g.cfg.Customers; i++ {
		email := strings.ToLower(g.faker.Email())
		if seen[email] {
			// Faker has no uniqueness guarantee; disambiguate with the row index.
			email = fmt.Sprintf("cust%05d.%s", i, email)
		}
		seen[email] = true

		c, err := model.NewCustomer(
			fmt.Sprintf("CUST%05d", i),
			norm.NFC.String(g.faker.Name()),
			email,
			norm.NFC.String(g.faker.City()),
			norm.NFC.String(g.faker.Country()),
		)
		if err != nil {
			return nil, fmt.Errorf("generate customers: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (g *Generator) products() ([]model.Product, error) {
	out := make([]model.Product, 0, g.cfg.Products)
	for i := 1; i <= g.cfg.Products; i++ {
		name := g.pick(productAdjectives) + " " + g.pick(productNouns)
		paise := g.between(g.cfg.PricePaise)
		p, err := model.NewProduct(
			fmt.Sprintf("PROD%05d", i),
			name,
			g.pick(model.ProductCategories),
			decimal.New(int64(paise), -2),
		)
		if err != nil {
			return nil, fmt.Errorf("generate products: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *Generator) orders(customers []model.Customer) ([]model.Order, error) {
	var out []model.Order
	next := 1
	for _, c := range customers {
		for n := g.between(g.cfg.OrdersPerCustomer); n > 0; n-- {
			date := g.now.AddDate(0, 0, -g.rng.Intn(365))
			o, err := model.NewOrder(
				fmt.Sprintf("ORD%06d", next),
				c.CustomerID,
				date,
				g.pick(model.OrderStatuses),
			)
			if err != nil {
				return nil, fmt.Errorf("generate orders: %w", err)
			}
			out = append(out, o)
			next++
		}
	}
	return out, nil
}

// items fills every order with at least one line. A product may repeat
// across lines of the same order; lines are not merged. Returns the exact
// decimal total per order for payment generation.
func (g *Generator) items(orders []model.Order, products []model.Product) ([]model.OrderItem, map[string]decimal.Decimal, error) {
	var out []model.OrderItem
	totals := make(map[string]decimal.Decimal, len(orders))
	next := 1
	for _, o := range orders {
		for n := g.between(g.cfg.ItemsPerOrder); n > 0; n-- {
			p := products[g.rng.Intn(len(products))]
			qty := g.between(g.cfg.Quantity)
			it, err := model.NewOrderItem(
				fmt.Sprintf("ITEM%06d", next),
				o.OrderID,
				p.ProductID,
				qty,
			)
			if err != nil {
				return nil, nil, fmt.Errorf("generate order items: %w", err)
			}
			out = append(out, it)
			totals[o.OrderID] = totals[o.OrderID].Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
			next++
		}
	}
	return out, totals, nil
}

func (g *Generator) payments(orders []model.Order, totals map[string]decimal.Decimal) ([]model.Payment, error) {
	out := make([]model.Payment, 0, len(orders))
	for i, o := range orders {
		status := model.PaymentSuccess
		if g.rng.Float64() < g.cfg.PaymentFailureRate {
			status = model.PaymentFailed
		}
		// Amount is the computed order total even when the payment failed.
		p, err := model.NewPayment(
			fmt.Sprintf("PAY%06d", i+1),
			o.OrderID,
			totals[o.OrderID],
			g.pick(model.PaymentModes),
			status,
			o.OrderDate.AddDate(0, 0, g.rng.Intn(4)),
		)
		if err != nil {
			return nil, fmt.Errorf("generate payments: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *Generator) between(r Range) int {
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}
