package main

import (
	"fmt"

	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/httpclient"
	"github.com/kbukum/storefront/pricing"
	"github.com/kbukum/storefront/redis"
)

const defaultBaseURL = "http://localhost:5000"

// Config is the configuration of the storefront command.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Profile namespaces the persisted state, so several shoppers can share
	// one Redis.
	Profile string `yaml:"profile" mapstructure:"profile"`

	API     httpclient.Config `yaml:"api" mapstructure:"api"`
	Redis   redis.Config      `yaml:"redis" mapstructure:"redis"`
	Pricing pricing.Rules     `yaml:"pricing" mapstructure:"pricing"`
}

// ApplyDefaults fills every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Profile == "" {
		c.Profile = "default"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	c.API.ApplyDefaults()
	c.Redis.ApplyDefaults()
	c.Pricing.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	return nil
}
