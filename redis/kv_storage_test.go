package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/state"
)

func newTestClient(t *testing.T, mutate ...func(*Config)) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	cfg := Config{Enabled: true, Addr: mini.Addr()}
	for _, m := range mutate {
		m(&cfg)
	}
	client, err := New(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create redis client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mini
}

func TestNewDisabled(t *testing.T) {
	if _, err := New(Config{}, logger.Nop()); err == nil {
		t.Fatal("expected error for disabled redis")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Enabled: true, TTL: "forever"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected ttl parse error")
	}
}

func TestClientPing(t *testing.T) {
	client, mini := newTestClient(t)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	mini.SetError("LOADING dataset in memory")
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure")
	}
}

func TestKVStorageSetGetRemove(t *testing.T) {
	client, mini := newTestClient(t)
	s := NewKVStorage(client, "alice")
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "cartItems"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "cartItems", `[{"_id":"p1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mini.Exists("storefront:alice:cartItems") {
		t.Fatalf("expected namespaced key, have %v", mini.Keys())
	}
	v, ok, err := s.Get(ctx, "cartItems")
	if err != nil || !ok || v != `[{"_id":"p1"}]` {
		t.Fatalf("unexpected get %q %v %v", v, ok, err)
	}
	if err := s.Remove(ctx, "cartItems"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if mini.Exists("storefront:alice:cartItems") {
		t.Fatal("expected key removed")
	}
}

func TestKVStorageTTL(t *testing.T) {
	client, mini := newTestClient(t, func(c *Config) { c.TTL = "1h" })
	s := NewKVStorage(client, "bob")
	if err := s.Set(context.Background(), "userInfo", "{}"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mini.TTL("storefront:bob:userInfo"); ttl != time.Hour {
		t.Errorf("expected 1h ttl, got %s", ttl)
	}
}

func TestKVStorageBacksStatePersistence(t *testing.T) {
	client, _ := newTestClient(t)
	storage := NewKVStorage(client, "carol")
	ctx := context.Background()

	store := state.NewStore(state.Default())
	store.Subscribe(state.NewPersister(storage, logger.Nop()).Listener())
	store.Dispatch(state.SignIn(state.UserInfo{ID: "u1", Name: "Carol", Token: "tok"}))
	store.Dispatch(state.AddItem(state.CartItem{ProductID: "p1", Name: "cap", Price: 250, Quantity: 2, CountInStock: 20}))
	store.Dispatch(state.SavePaymentMethod(state.PaymentPayPal))

	restored, err := state.Hydrate(ctx, storage)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if restored.UserInfo == nil || restored.UserInfo.Name != "Carol" {
		t.Errorf("unexpected user %+v", restored.UserInfo)
	}
	if it, ok := restored.Cart.Find("p1"); !ok || it.Quantity != 2 {
		t.Errorf("unexpected cart %+v", restored.Cart.CartItems)
	}
	if restored.Cart.PaymentMethod != state.PaymentPayPal {
		t.Errorf("unexpected payment method %q", restored.Cart.PaymentMethod)
	}
}

func TestClientCheckHealth(t *testing.T) {
	client, mini := newTestClient(t)
	if h := client.CheckHealth(context.Background()); h.Status != "up" {
		t.Fatalf("expected up, got %+v", h)
	}
	mini.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if h := client.CheckHealth(ctx); h.Status != "down" {
		t.Errorf("expected down, got %+v", h)
	}
}
