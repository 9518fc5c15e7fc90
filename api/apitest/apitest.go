// Package apitest runs a seeded storefront API for tests of packages that
// talk to it over HTTP.
package apitest

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kbukum/storefront/api"
	"github.com/kbukum/storefront/auth"
	"github.com/kbukum/storefront/auth/password"
	"github.com/kbukum/storefront/auth/token"
	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/seed"
	"github.com/kbukum/storefront/server"
)

var testDBSeq atomic.Int64

// Config returns a configuration backed by a private in-memory database
// with the seed route enabled.
func Config() api.Config {
	return api.Config{
		ServiceConfig: config.ServiceConfig{Name: "storefront-api-test", Environment: "development"},
		Server:        server.Config{Mode: "test"},
		Database: database.Config{
			DSN:         fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testDBSeq.Add(1)),
			AutoMigrate: true,
			LogLevel:    "silent",
		},
		Auth: auth.Config{
			JWT:      token.Config{Secret: "storefront-test-secret"},
			Password: password.Config{BcryptCost: 4},
		},
		Seed: seed.Config{Enabled: true},
	}
}

// NewServer starts the API on an httptest server and seeds it. mutate
// may adjust the configuration first.
func NewServer(t testing.TB, mutate ...func(*api.Config)) (*api.App, *httptest.Server) {
	t.Helper()
	cfg := Config()
	for _, m := range mutate {
		m(&cfg)
	}
	ctx := context.Background()
	app, err := api.New(ctx, cfg, logger.Nop())
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	if _, err := app.Seeder.Run(ctx); err != nil {
		app.Close(ctx)
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(app.Server.Handler())
	t.Cleanup(func() {
		ts.Close()
		app.Close(context.Background())
	})
	return app, ts
}
