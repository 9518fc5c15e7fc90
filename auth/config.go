package auth

import (
	"fmt"

	"github.com/kbukum/storefront/auth/password"
	"github.com/kbukum/storefront/auth/token"
)

// Config holds all authentication configuration.
type Config struct {
	JWT      token.Config    `mapstructure:"jwt"`
	Password password.Config `mapstructure:"password"`
}

// ApplyDefaults sets defaults on both sub-configurations.
func (c *Config) ApplyDefaults() {
	c.JWT.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate checks both sub-configurations.
func (c *Config) Validate() error {
	if err := c.JWT.Validate(); err != nil {
		return fmt.Errorf("auth.jwt: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("auth.password: %w", err)
	}
	return nil
}

// Describe returns a one-liner for the startup summary.
func (c *Config) Describe() string {
	return fmt.Sprintf("JWT(HS256) TTL=%s password=bcrypt(cost=%d)", c.JWT.TTL, c.Password.BcryptCost)
}
