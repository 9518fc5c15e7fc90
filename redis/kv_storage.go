package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/storefront/state"
)

var _ state.Storage = (*KVStorage)(nil)

// KVStorage stores state slices under "<prefix>:<namespace>:<key>". The
// namespace separates the state of different client profiles sharing one
// Redis.
type KVStorage struct {
	client    *Client
	keyPrefix string
	ttl       time.Duration
}

// NewKVStorage creates storage for one client namespace.
func NewKVStorage(client *Client, namespace string) *KVStorage {
	ttl, _ := client.cfg.ttl()
	prefix := client.cfg.KeyPrefix
	if namespace != "" {
		prefix = prefix + ":" + namespace
	}
	return &KVStorage{client: client, keyPrefix: prefix, ttl: ttl}
}

func (s *KVStorage) fullKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + ":" + key
}

func (s *KVStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.client.Get(ctx, s.fullKey(key))
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, ok, nil
}

func (s *KVStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.fullKey(key), value, s.ttl); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.fullKey(key)); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
