package seed

import (
	"context"

	"gorm.io/gorm"

	"github.com/kbukum/storefront/catalog"
	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/identity"
	"github.com/kbukum/storefront/logger"
)

// Result lists what a seed run inserted.
type Result struct {
	CreatedProducts []catalog.Product `json:"createdProducts"`
	CreatedUsers    []identity.User   `json:"createdUsers"`
}

// Seeder replaces products and users with the sample data.
type Seeder struct {
	db    *database.DB
	users *identity.Service
	cfg   Config
	log   *logger.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(db *database.DB, users *identity.Service, cfg Config, log *logger.Logger) *Seeder {
	cfg.ApplyDefaults()
	return &Seeder{db: db, users: users, cfg: cfg, log: log.WithComponent("seed")}
}

// Run deletes all products and users and inserts the sample data in one
// transaction.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{CreatedProducts: Products(), CreatedUsers: s.userModels()}
	err := s.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := catalog.ReplaceAll(tx, res.CreatedProducts); err != nil {
			return err
		}
		return s.users.ReplaceAll(tx, res.CreatedUsers)
	})
	if err != nil {
		s.log.WithContext(ctx).Error("seed failed", logger.Fields(logger.FieldError, err.Error()))
		return nil, err
	}
	s.log.WithContext(ctx).Info("database seeded", logger.Fields(
		"products", len(res.CreatedProducts),
		"users", len(res.CreatedUsers),
	))
	return res, nil
}

func (s *Seeder) userModels() []identity.User {
	users := make([]identity.User, 0, len(s.cfg.Users))
	for _, u := range s.cfg.Users {
		users = append(users, identity.User{Name: u.Name, Email: u.Email, Password: u.Password, IsAdmin: u.IsAdmin})
	}
	return users
}
