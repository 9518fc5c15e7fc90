package token

import (
	"errors"
	"time"
)

// DefaultTTL is the lifetime of an issued credential.
const DefaultTTL = 30 * 24 * time.Hour

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Every instance verifying tokens must
	// share it; there is no key rotation.
	Secret string `mapstructure:"secret"`

	// TTL is the credential lifetime (default: 30 days).
	TTL time.Duration `mapstructure:"ttl"`

	// Issuer is the "iss" claim (optional). When set, verification requires it.
	Issuer string `mapstructure:"issuer"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("secret is required")
	}
	if c.TTL < 0 {
		return errors.New("ttl must not be negative")
	}
	return nil
}
