// Command storefront is a shopper's client for the storefront API. The cart,
// checkout choices and session survive between runs in Redis, or in memory
// for a single run when Redis is disabled.
//
//	storefront [--config FILE] [--profile NAME] <command> [args...]
//	storefront help
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/storefront/bootstrap"
	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/pricing"
	"github.com/kbukum/storefront/redis"
	"github.com/kbukum/storefront/state"
	"github.com/kbukum/storefront/storefront"
)

const serviceName = "storefront"

func main() {
	flags := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "config file (default: cmd/storefront/config.yml or ./config.yml)")
	profile := flags.StringP("profile", "p", "", "state namespace to act as")
	baseURL := flags.String("api", "", "API base URL")
	flags.SetInterspersed(false)
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	var cfg Config
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
	if *profile != "" {
		cfg.Profile = *profile
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}

	if err := run(context.Background(), &cfg, flags.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", serviceName, storefront.Message(err))
		os.Exit(1)
	}
}

// run executes one command with the state of cfg.Profile.
func run(ctx context.Context, cfg *Config, args []string, out io.Writer) error {
	boot, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	log := boot.Logger

	storage, err := openStorage(boot, log)
	if err != nil {
		return err
	}
	calc, err := pricing.NewCalculator(cfg.Pricing)
	if err != nil {
		return err
	}

	var sh *shell
	boot.OnStart(func(ctx context.Context) error {
		store := storefront.OpenStore(ctx, storage, log)
		client, err := storefront.New(cfg.API, store, log, storefront.WithCalculator(calc))
		if err != nil {
			return err
		}
		sh = &shell{client: client, out: out}
		return nil
	})

	return boot.RunTask(ctx, func(ctx context.Context) error {
		return sh.exec(ctx, args)
	})
}

// openStorage returns Redis-backed storage for the profile when Redis is
// enabled, else storage that lives as long as the process.
func openStorage(boot *bootstrap.App[*Config], log *logger.Logger) (state.Storage, error) {
	cfg := boot.Cfg
	if !cfg.Redis.Enabled {
		log.Debug("redis disabled, state is not kept between runs")
		return state.NewMemoryStorage(), nil
	}
	client, err := redis.New(cfg.Redis, log)
	if err != nil {
		return nil, err
	}
	boot.AddHealthChecker(client)
	boot.OnStart(client.Ping)
	boot.OnStop(func(context.Context) error { return client.Close() })
	return redis.NewKVStorage(client, cfg.Profile), nil
}
