// Package redis wraps go-redis for the storefront client and provides
// KVStorage, the durable state.Storage the client persists its session and
// cart into.
package redis
