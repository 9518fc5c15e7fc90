package orders

import "github.com/kbukum/storefront/pricing"

// DefaultPayPalClientID is the PayPal sandbox client id.
const DefaultPayPalClientID = "sb"

// Config configures order placement and payment.
type Config struct {
	PayPalClientID string        `yaml:"paypal_client_id" mapstructure:"paypal_client_id"`
	Pricing        pricing.Rules `yaml:"pricing" mapstructure:"pricing"`
}

// ApplyDefaults sets defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.PayPalClientID == "" {
		c.PayPalClientID = DefaultPayPalClientID
	}
	c.Pricing.ApplyDefaults()
}

// Validate compiles the pricing rules.
func (c *Config) Validate() error {
	return c.Pricing.Validate()
}
