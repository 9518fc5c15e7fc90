// Package version exposes build information for the storefront binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/storefront/version.Version=1.2.0" ./cmd/storefront-api
package version
