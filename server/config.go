package server

import (
	"fmt"
	"slices"

	"github.com/kbukum/storefront/server/middleware"
)

// Config holds HTTP server configuration. Timeouts are in seconds; Mode is
// the gin mode (debug, release or test).
type Config struct {
	Host         string                     `yaml:"host" mapstructure:"host"`
	Port         int                        `yaml:"port" mapstructure:"port"`
	ReadTimeout  int                        `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int                        `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int                        `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	MaxBodySize  string                     `yaml:"max_body_size" mapstructure:"max_body_size"`
	Mode         string                     `yaml:"mode" mapstructure:"mode"`
	CORS         middleware.CORSConfig      `yaml:"cors" mapstructure:"cors"`
	AuthLimit    middleware.RateLimitConfig `yaml:"auth_rate_limit" mapstructure:"auth_rate_limit"`
}

// Addr returns host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 5000
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
	if c.Mode == "" {
		c.Mode = "release"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID}
	}
	if c.AuthLimit.RequestsPerMinute == 0 {
		c.AuthLimit.RequestsPerMinute = 20
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must be non-negative (got: %d)", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout must be non-negative (got: %d)", c.WriteTimeout)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must be non-negative (got: %d)", c.IdleTimeout)
	}
	if !slices.Contains([]string{"debug", "release", "test"}, c.Mode) {
		return fmt.Errorf("server.mode must be debug, release or test (got: %q)", c.Mode)
	}
	if c.AuthLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("server.auth_rate_limit.requests_per_minute must be non-negative (got: %d)", c.AuthLimit.RequestsPerMinute)
	}
	return nil
}
