package bootstrap

import (
	"github.com/kbukum/storefront/config"
)

// Config is the constraint on application configuration types. Any struct
// embedding config.ServiceConfig satisfies it through promoted methods.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
