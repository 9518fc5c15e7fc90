package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/kbukum/storefront/api/apitest"
	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/httpclient"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/redis"
)

type harness struct {
	t       *testing.T
	baseURL string
	mini    *miniredis.Miniredis
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	_, ts := apitest.NewServer(t)
	mini := miniredis.RunT(t)
	return &harness{t: t, baseURL: ts.URL, mini: mini}
}

func (h *harness) config(profile string) *Config {
	return &Config{
		ServiceConfig: config.ServiceConfig{
			Name:        serviceName,
			Environment: "development",
			Logging:     logger.Config{Level: "error"},
		},
		Profile: profile,
		API:     httpclient.Config{BaseURL: h.baseURL},
		Redis:   redis.Config{Enabled: true, Addr: h.mini.Addr()},
	}
}

// exec runs one command as a fresh process would.
func (h *harness) exec(profile string, args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), h.config(profile), args, &out)
	return out.String(), err
}

func (h *harness) mustExec(profile string, args ...string) string {
	h.t.Helper()
	out, err := h.exec(profile, args...)
	if err != nil {
		h.t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestCheckoutAcrossRuns(t *testing.T) {
	h := newHarness(t)

	h.mustExec("alice", "add", "Denial-tshirt")
	h.mustExec("alice", "add", "Denial-tshirt")
	h.mustExec("alice", "add", "sink-tshirt")

	cart := h.mustExec("alice", "cart")
	for _, want := range []string{"Subtotal (3 items): $115.00", "Shipping: $0.00", "Tax:      $17.25", "Total:    $132.25"} {
		if !strings.Contains(cart, want) {
			t.Errorf("cart output missing %q:\n%s", want, cart)
		}
	}

	if _, err := h.exec("alice", "place"); err == nil {
		t.Fatal("expected sign-in requirement before placing")
	}

	h.mustExec("alice", "signin", "user@example.com", "123456")
	h.mustExec("alice", "shipping", "John Doe", "1 Main St", "Springfield", "12345", "US")
	h.mustExec("alice", "payment", "PayPal")

	placed := h.mustExec("alice", "place")
	if !strings.Contains(placed, "total $132.25") {
		t.Fatalf("unexpected place output: %s", placed)
	}
	orderID := strings.Fields(placed)[1]

	if out := h.mustExec("alice", "cart"); !strings.Contains(out, "Cart is empty") {
		t.Errorf("cart should be cleared after placing, got:\n%s", out)
	}

	paid := h.mustExec("alice", "pay", orderID)
	if !strings.Contains(paid, "paid via PayPal (client sb)") {
		t.Errorf("unexpected pay output: %s", paid)
	}

	detail := h.mustExec("alice", "order", orderID)
	if strings.Contains(detail, "Paid:   No") {
		t.Errorf("order should be paid:\n%s", detail)
	}
	if !strings.Contains(detail, "Denial-tshirt") {
		t.Errorf("order detail missing item:\n%s", detail)
	}

	history := h.mustExec("alice", "orders")
	if !strings.Contains(history, orderID) {
		t.Errorf("history missing %s:\n%s", orderID, history)
	}
}

func TestProfilesAreSeparate(t *testing.T) {
	h := newHarness(t)

	h.mustExec("alice", "add", "aastin-tshirt")
	if out := h.mustExec("bob", "cart"); !strings.Contains(out, "Cart is empty") {
		t.Errorf("bob should not see alice's cart:\n%s", out)
	}
	if out := h.mustExec("alice", "cart"); !strings.Contains(out, "aastin-tshirt") {
		t.Errorf("alice lost her cart:\n%s", out)
	}
}

func TestQuantityChecks(t *testing.T) {
	h := newHarness(t)
	h.mustExec("p", "add", "sink-tshirt")

	if out := h.mustExec("p", "qty", "sink-tshirt", "5"); !strings.Contains(out, "x5") {
		t.Errorf("unexpected qty output: %s", out)
	}
	if _, err := h.exec("p", "qty", "sink-tshirt", "6"); err == nil {
		t.Error("expected out of stock for 6 of 5")
	}
	if _, err := h.exec("p", "qty", "sink-tshirt", "many"); err == nil {
		t.Error("expected validation error for non-numeric quantity")
	}
	if _, err := h.exec("p", "qty", "Denial-cap", "1"); err == nil {
		t.Error("expected not found for a product outside the cart")
	}

	h.mustExec("p", "remove", "sink-tshirt")
	if out := h.mustExec("p", "cart"); !strings.Contains(out, "Cart is empty") {
		t.Errorf("expected empty cart, got:\n%s", out)
	}
}

func TestSessionCommands(t *testing.T) {
	h := newHarness(t)

	if out := h.mustExec("s", "whoami"); !strings.Contains(out, "Not signed in") {
		t.Errorf("unexpected whoami: %s", out)
	}
	if _, err := h.exec("s", "signup", "Jane", "jane@example.com", "secret1", "secret2"); err == nil {
		t.Error("expected password mismatch")
	}
	h.mustExec("s", "signup", "Jane", "jane@example.com", "secret1", "secret1")
	if out := h.mustExec("s", "whoami"); !strings.Contains(out, "Jane <jane@example.com> (customer)") {
		t.Errorf("unexpected whoami: %s", out)
	}

	h.mustExec("s", "profile", "Jane Roe", "jane@example.com")
	if out := h.mustExec("s", "whoami"); !strings.Contains(out, "Jane Roe") {
		t.Errorf("profile update not persisted: %s", out)
	}

	h.mustExec("s", "signout")
	if out := h.mustExec("s", "whoami"); !strings.Contains(out, "Not signed in") {
		t.Errorf("expected signed out: %s", out)
	}
}

func TestExecUsage(t *testing.T) {
	h := newHarness(t)

	out := h.mustExec("u", "help")
	if !strings.Contains(out, "signin EMAIL PASSWORD") {
		t.Errorf("help missing signin usage:\n%s", out)
	}
	if _, err := h.exec("u", "teleport"); err == nil {
		t.Error("expected unknown command error")
	}
	_, err := h.exec("u", "signin", "only-email")
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestMemoryStorageWhenRedisDisabled(t *testing.T) {
	h := newHarness(t)
	cfg := h.config("m")
	cfg.Redis.Enabled = false

	var out bytes.Buffer
	if err := run(context.Background(), cfg, []string{"products"}, &out); err != nil {
		t.Fatalf("products: %v", err)
	}
	if !strings.Contains(out.String(), "Denial-cap") {
		t.Errorf("catalog missing product:\n%s", out.String())
	}
}

func TestRedisUnavailable(t *testing.T) {
	h := newHarness(t)
	h.mini.Close()

	if _, err := h.exec("x", "cart"); err == nil {
		t.Error("expected startup to fail without redis")
	}
}
