package seed

import (
	"errors"
	"fmt"
)

// DefaultPassword is the password of the default seed users.
const DefaultPassword = "123456"

// UserConfig is one seeded account.
type UserConfig struct {
	Name     string `yaml:"name" mapstructure:"name"`
	Email    string `yaml:"email" mapstructure:"email"`
	Password string `yaml:"password" mapstructure:"password"`
	IsAdmin  bool   `yaml:"is_admin" mapstructure:"is_admin"`
}

// Config configures the seed data and whether the seed route is mounted.
type Config struct {
	Enabled bool         `yaml:"enabled" mapstructure:"enabled"`
	Users   []UserConfig `yaml:"users" mapstructure:"users"`
}

// ApplyDefaults seeds an admin and a regular user when none are configured.
func (c *Config) ApplyDefaults() {
	if len(c.Users) > 0 {
		return
	}
	c.Users = []UserConfig{
		{Name: "Admin", Email: "admin@example.com", Password: DefaultPassword, IsAdmin: true},
		{Name: "John", Email: "user@example.com", Password: DefaultPassword},
	}
}

// Validate checks that every user has an email and a password.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Users))
	for i, u := range c.Users {
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("seed.users[%d]: email and password are required", i)
		}
		if seen[u.Email] {
			return errors.New("seed.users: duplicate email " + u.Email)
		}
		seen[u.Email] = true
	}
	return nil
}
