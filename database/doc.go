// Package database opens the storefront's GORM database (SQLite through
// gorm.io/driver/sqlite) and maps persistence errors onto AppErrors.
//
//	db, err := database.Open(ctx, cfg, log)
//	err = db.AutoMigrate(&catalog.Product{}, &identity.User{}, &orders.Order{})
//	err = db.WithTransaction(ctx, func(tx *gorm.DB) error { ... })
//
// dbtest.New opens an in-memory database for package tests.
package database
