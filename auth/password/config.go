package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Config configures password hashing.
type Config struct {
	// BcryptCost is the bcrypt cost parameter (default: 10).
	BcryptCost int `mapstructure:"bcrypt_cost"`

	// MinLength is the minimum accepted password length (default: 6).
	MinLength int `mapstructure:"min_length"`
}

// ApplyDefaults sets defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.MinLength == 0 {
		c.MinLength = 6
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d (got: %d)", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.MinLength < 1 || c.MinLength > maxLength {
		return fmt.Errorf("min_length must be between 1 and %d (got: %d)", maxLength, c.MinLength)
	}
	return nil
}
