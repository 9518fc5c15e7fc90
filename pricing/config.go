package pricing

// Default rule expressions.
const (
	DefaultItems    = "round2(subtotal)"
	DefaultShipping = "itemsPrice > 100 ? 0.0 : 10.0"
	DefaultTax      = "round2(0.15 * itemsPrice)"
	DefaultTotal    = "round2(itemsPrice + shippingPrice + taxPrice)"
)

// Rules holds the price expressions. Empty fields use the defaults.
type Rules struct {
	Items    string `yaml:"items" mapstructure:"items"`
	Shipping string `yaml:"shipping" mapstructure:"shipping"`
	Tax      string `yaml:"tax" mapstructure:"tax"`
	Total    string `yaml:"total" mapstructure:"total"`
}

// ApplyDefaults fills empty expressions.
func (r *Rules) ApplyDefaults() {
	if r.Items == "" {
		r.Items = DefaultItems
	}
	if r.Shipping == "" {
		r.Shipping = DefaultShipping
	}
	if r.Tax == "" {
		r.Tax = DefaultTax
	}
	if r.Total == "" {
		r.Total = DefaultTotal
	}
}

// Validate compiles every expression.
func (r *Rules) Validate() error {
	_, err := NewCalculator(*r)
	return err
}
