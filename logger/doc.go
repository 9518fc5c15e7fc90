// Package logger provides structured logging for the storefront binaries
// on top of zerolog.
//
// Every component receives a *Logger and scopes it with WithComponent so
// log lines carry the emitting subsystem:
//
//	log := logger.New(&cfg.Logging, "storefront-api")
//	log.WithComponent("orders").Info("order created", logger.Fields("order_id", id))
package logger
