// Package api assembles the storefront HTTP API: it opens the database,
// builds the domain services and mounts their routes on a server.Server.
//
//	app, err := api.New(ctx, cfg, log)
//	if err != nil { ... }
//	err = app.Start(ctx)
//	defer app.Stop(ctx)
package api
