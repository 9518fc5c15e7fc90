// Command storefront-api serves the storefront HTTP API.
//
// Configuration is read from cmd/storefront-api/config.yml (or ./config.yml)
// and environment variables; AUTH_JWT_SECRET must be set.
//
//	storefront-api [--seed]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/storefront/api"
	"github.com/kbukum/storefront/bootstrap"
	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/logger"
)

const serviceName = "storefront-api"

func main() {
	seedData := pflag.Bool("seed", false, "replace products and users with the sample data before serving")
	pflag.Parse()

	if err := run(*seedData); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(seedData bool) error {
	var cfg api.Config
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		return err
	}

	boot, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := api.New(ctx, cfg, boot.Logger)
	if err != nil {
		return err
	}
	boot.AddHealthChecker(app.DB)

	if seedData {
		boot.OnStart(func(ctx context.Context) error {
			res, err := app.Seeder.Run(ctx)
			if err != nil {
				return err
			}
			boot.Logger.Info("sample data loaded", logger.Fields(
				"products", len(res.CreatedProducts),
				"users", len(res.CreatedUsers),
			))
			return nil
		})
	}
	boot.OnStart(app.Start)
	boot.OnStop(app.Stop)

	return boot.Run(ctx)
}
