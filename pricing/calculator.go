package pricing

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Line is one priced cart line.
type Line struct {
	Price    float64 `expr:"price"`
	Quantity int     `expr:"quantity"`
}

// Prices is the result of a calculation.
type Prices struct {
	ItemsPrice    float64 `json:"itemsPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	TaxPrice      float64 `json:"taxPrice"`
	TotalPrice    float64 `json:"totalPrice"`
}

// env is the variable set visible to every expression. Later stages see the
// results of earlier ones.
type env struct {
	Lines         []Line                `expr:"lines"`
	Subtotal      float64               `expr:"subtotal"`
	ItemCount     int                   `expr:"itemCount"`
	ItemsPrice    float64               `expr:"itemsPrice"`
	ShippingPrice float64               `expr:"shippingPrice"`
	TaxPrice      float64               `expr:"taxPrice"`
	Round2        func(float64) float64 `expr:"round2"`
}

// Calculator evaluates compiled price rules. It is safe for concurrent use.
type Calculator struct {
	items, shipping, tax, total *vm.Program
}

// NewCalculator compiles rules, applying defaults for empty expressions.
func NewCalculator(rules Rules) (*Calculator, error) {
	rules.ApplyDefaults()
	c := &Calculator{}
	for _, stage := range []struct {
		name string
		src  string
		dst  **vm.Program
	}{
		{"items", rules.Items, &c.items},
		{"shipping", rules.Shipping, &c.shipping},
		{"tax", rules.Tax, &c.tax},
		{"total", rules.Total, &c.total},
	} {
		prog, err := expr.Compile(stage.src, expr.Env(env{}), expr.AsFloat64())
		if err != nil {
			return nil, fmt.Errorf("pricing: compile %s rule %q: %w", stage.name, stage.src, err)
		}
		*stage.dst = prog
	}
	return c, nil
}

// MustDefault returns a calculator with the default rules.
func MustDefault() *Calculator {
	c, err := NewCalculator(Rules{})
	if err != nil {
		panic(err)
	}
	return c
}

// Calculate prices lines. An empty cart prices to zero items plus whatever
// the shipping and tax rules yield for zero.
func (c *Calculator) Calculate(lines []Line) (Prices, error) {
	e := env{Lines: lines, Round2: Round2}
	for _, l := range lines {
		e.Subtotal += l.Price * float64(l.Quantity)
		e.ItemCount += l.Quantity
	}

	var err error
	if e.ItemsPrice, err = run(c.items, e); err != nil {
		return Prices{}, fmt.Errorf("pricing: items: %w", err)
	}
	if e.ShippingPrice, err = run(c.shipping, e); err != nil {
		return Prices{}, fmt.Errorf("pricing: shipping: %w", err)
	}
	if e.TaxPrice, err = run(c.tax, e); err != nil {
		return Prices{}, fmt.Errorf("pricing: tax: %w", err)
	}
	total, err := run(c.total, e)
	if err != nil {
		return Prices{}, fmt.Errorf("pricing: total: %w", err)
	}
	return Prices{
		ItemsPrice:    e.ItemsPrice,
		ShippingPrice: e.ShippingPrice,
		TaxPrice:      e.TaxPrice,
		TotalPrice:    total,
	}, nil
}

func run(prog *vm.Program, e env) (float64, error) {
	out, err := expr.Run(prog, e)
	if err != nil {
		return 0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("rule returned %T, want float64", out)
	}
	return v, nil
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
