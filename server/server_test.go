package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/observability"
	"github.com/kbukum/storefront/server/middleware"
)

type downChecker struct{}

func (downChecker) CheckHealth(context.Context) observability.Health {
	return observability.Health{Name: "database", Status: observability.HealthStatusDown, Message: "closed"}
}

func newTestServer(t *testing.T, checkers ...observability.HealthChecker) *Server {
	t.Helper()
	s := New(Config{Mode: "test"}, logger.Nop())
	s.ApplyMiddleware("storefront-test")
	s.RegisterDefaultEndpoints("storefront-test", observability.NewPrometheus("server_test"), checkers...)
	return s
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(method, path, http.NoBody))
	return rr
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Errorf("expected release mode, got %q", cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"port out of range", Config{Port: 70000, Mode: "release"}},
		{"negative timeout", Config{Port: 1, ReadTimeout: -1, Mode: "release"}},
		{"unknown mode", Config{Port: 1, Mode: "turbo"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	rr := serve(newTestServer(t), http.MethodGet, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("server-wide middleware should set X-Request-Id")
	}

	rr = serve(newTestServer(t, downChecker{}), http.MethodGet, "/health")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with a dependency down, got %d", rr.Code)
	}
}

func TestInfoAndMetricsEndpoints(t *testing.T) {
	s := newTestServer(t)
	if rr := serve(s, http.MethodGet, "/info"); rr.Code != http.StatusOK {
		t.Errorf("/info: expected 200, got %d", rr.Code)
	}
	if rr := serve(s, http.MethodGet, "/metrics"); rr.Code != http.StatusOK {
		t.Errorf("/metrics: expected 200, got %d", rr.Code)
	}
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	rr := serve(newTestServer(t), http.MethodGet, "/api/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body apperrors.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != apperrors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", body.Error.Code)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t)
	s.GinEngine().GET("/boom", func(*gin.Context) { panic("boom") })

	rr := serve(s, http.MethodGet, "/boom")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestRespondHelpers(t *testing.T) {
	s := newTestServer(t)
	s.GinEngine().GET("/ok", func(c *gin.Context) { RespondOK(c, gin.H{"n": 1}) })
	s.GinEngine().POST("/bind", func(c *gin.Context) {
		var dst struct{ Name string }
		if !BindJSON(c, &dst) {
			return
		}
		RespondCreated(c, dst)
	})

	rr := serve(s, http.MethodGet, "/ok")
	if rr.Body.String() != `{"data":{"n":1}}` {
		t.Errorf("unexpected body %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bind", http.NoBody)
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("empty body should be rejected with 400, got %d", rr.Code)
	}
}

func TestStartStop(t *testing.T) {
	s := New(Config{Host: "127.0.0.1", Port: 0, Mode: "test"}, logger.Nop())
	s.config.Port = 0
	s.httpServer.Addr = "127.0.0.1:0"
	s.RegisterDefaultEndpoints("storefront-test", nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	resp, err := http.Get("http://" + s.Addr() + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
