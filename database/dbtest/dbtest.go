// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/logger"
)

var seq atomic.Int64

// New opens a private in-memory SQLite database, migrates models and closes
// it when the test ends.
func New(t testing.TB, models ...interface{}) *database.DB {
	t.Helper()
	cfg := database.Config{
		DSN:      fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", seq.Add(1)),
		LogLevel: "silent",
	}
	db, err := database.Open(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
