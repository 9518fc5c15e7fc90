package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCalculate_Defaults(t *testing.T) {
	calc := MustDefault()

	tests := []struct {
		name  string
		lines []Line
		want  Prices
	}{
		{
			name:  "below free shipping threshold",
			lines: []Line{{Price: 25, Quantity: 2}, {Price: 10.5, Quantity: 1}},
			want:  Prices{ItemsPrice: 60.5, ShippingPrice: 10, TaxPrice: 9.08, TotalPrice: 79.58},
		},
		{
			name:  "exactly 100 still pays shipping",
			lines: []Line{{Price: 50, Quantity: 2}},
			want:  Prices{ItemsPrice: 100, ShippingPrice: 10, TaxPrice: 15, TotalPrice: 125},
		},
		{
			name:  "free shipping above 100",
			lines: []Line{{Price: 120, Quantity: 1}, {Price: 250, Quantity: 1}},
			want:  Prices{ItemsPrice: 370, ShippingPrice: 0, TaxPrice: 55.5, TotalPrice: 425.5},
		},
		{
			name:  "rounds item subtotal to cents",
			lines: []Line{{Price: 0.333, Quantity: 3}},
			want:  Prices{ItemsPrice: 1, ShippingPrice: 10, TaxPrice: 0.15, TotalPrice: 11.15},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Calculate(tc.lines)
			if err != nil {
				t.Fatalf("Calculate: %v", err)
			}
			if !almostEqual(got.ItemsPrice, tc.want.ItemsPrice) ||
				!almostEqual(got.ShippingPrice, tc.want.ShippingPrice) ||
				!almostEqual(got.TaxPrice, tc.want.TaxPrice) ||
				!almostEqual(got.TotalPrice, tc.want.TotalPrice) {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCalculate_CustomRules(t *testing.T) {
	calc, err := NewCalculator(Rules{
		Shipping: "itemCount >= 3 ? 0.0 : 5.0",
		Tax:      "round2(0.2 * itemsPrice)",
	})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	got, err := calc.Calculate([]Line{{Price: 10, Quantity: 3}})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.ShippingPrice != 0 || got.TaxPrice != 6 || got.TotalPrice != 36 {
		t.Errorf("unexpected prices %+v", got)
	}
}

func TestNewCalculator_RejectsBadRules(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
	}{
		{"syntax", Rules{Tax: "0.15 *"}},
		{"unknown variable", Rules{Shipping: "weight > 3 ? 1.0 : 2.0"}},
		{"non numeric", Rules{Total: `"free"`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCalculator(tc.rules); err == nil {
				t.Error("expected compile error")
			}
			if err := tc.rules.Validate(); err == nil {
				t.Error("Validate should report the compile error")
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{9.074, 9.07},
		{9.076, 9.08},
		{100, 100},
		{0, 0},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); !almostEqual(got, tc.want) {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
