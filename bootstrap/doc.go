// Package bootstrap runs a storefront binary through a uniform lifecycle:
// validate config, run start hooks, report readiness, block until a signal
// (or until a finite task ends) and run stop hooks within a deadline.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(api.Start)
//	app.OnStop(api.Stop)
//	err = app.Run(ctx)
package bootstrap
