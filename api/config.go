package api

import (
	"fmt"

	"github.com/kbukum/storefront/auth"
	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/observability"
	"github.com/kbukum/storefront/orders"
	"github.com/kbukum/storefront/seed"
	"github.com/kbukum/storefront/server"
)

// Config is the configuration of the storefront-api binary.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Database      database.Config      `yaml:"database" mapstructure:"database"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Orders        orders.Config        `yaml:"orders" mapstructure:"orders"`
	Seed          seed.Config          `yaml:"seed" mapstructure:"seed"`
}

// ApplyDefaults fills every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
	c.Orders.ApplyDefaults()
	c.Seed.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}
	if err := c.Orders.Validate(); err != nil {
		return fmt.Errorf("orders: %w", err)
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	return nil
}
