package bootstrap

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/kbukum/storefront/config"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/observability"
)

type testConfig struct {
	config.ServiceConfig
}

type stubChecker observability.Health

func (s stubChecker) CheckHealth(context.Context) observability.Health {
	return observability.Health(s)
}

func newTestConfig(name, version string) *testConfig {
	return &testConfig{
		ServiceConfig: config.ServiceConfig{
			Name:        name,
			Version:     version,
			Environment: "development",
		},
	}
}

func newTestApp(t *testing.T) *App[*testConfig] {
	t.Helper()
	app, err := NewApp(newTestConfig("test", "1.0"), WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestConfig("test-svc", "1.0.0"))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "test-svc" || app.Version != "1.0.0" {
		t.Errorf("unexpected identity %s/%s", app.Name, app.Version)
	}
	if app.Logger == nil {
		t.Error("expected logger from config")
	}
	if app.Cfg.Logging.Level != "info" {
		t.Errorf("expected defaults applied, got level %q", app.Cfg.Logging.Level)
	}
	if app.gracefulTimeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", app.gracefulTimeout)
	}
}

func TestNewAppValidation(t *testing.T) {
	if _, err := NewApp(newTestConfig("", "1.0")); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestNewAppWithOptions(t *testing.T) {
	l := logger.Nop()
	app, err := NewApp(newTestConfig("test", "1.0"), WithLogger(l), WithGracefulTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Logger != l {
		t.Error("expected custom logger")
	}
	if app.gracefulTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", app.gracefulTimeout)
	}
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name     string
		checkers []observability.HealthChecker
		wantErr  bool
	}{
		{"empty", nil, false},
		{"all up", []observability.HealthChecker{
			stubChecker{Name: "database", Status: observability.HealthStatusUp},
		}, false},
		{"one down", []observability.HealthChecker{
			stubChecker{Name: "database", Status: observability.HealthStatusUp},
			stubChecker{Name: "redis", Status: observability.HealthStatusDown, Message: "refused"},
		}, true},
		{"degraded", []observability.HealthChecker{
			stubChecker{Name: "redis", Status: observability.HealthStatusDegraded},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			app.AddHealthChecker(tt.checkers...)
			err := app.ReadyCheck(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadyCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunTaskSuccess(t *testing.T) {
	app := newTestApp(t)
	executed := false
	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		executed = true
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask failed: %v", err)
	}
	if !executed {
		t.Error("expected task to be executed")
	}
}

func TestRunTaskError(t *testing.T) {
	app := newTestApp(t)
	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("task error")
	})
	if err == nil || err.Error() != "task error" {
		t.Errorf("expected 'task error', got %v", err)
	}
}

func TestRunTaskCancellation(t *testing.T) {
	app := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	err := app.RunTask(ctx, func(taskCtx context.Context) error {
		cancel()
		<-taskCtx.Done()
		return taskCtx.Err()
	})
	if err == nil {
		t.Error("expected error from canceled task")
	}
}

func TestRunTaskHookOrder(t *testing.T) {
	app := newTestApp(t)

	var order []string
	record := func(name string) Hook {
		return func(context.Context) error {
			order = append(order, name)
			return nil
		}
	}
	app.OnStart(record("start-1"), record("start-2"))
	app.OnReady(record("ready"))
	app.OnStop(record("stop-1"), record("stop-2"))

	err := app.RunTask(context.Background(), func(context.Context) error {
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask failed: %v", err)
	}
	want := []string{"start-1", "start-2", "ready", "task", "stop-2", "stop-1"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestRunTaskStartHookError(t *testing.T) {
	app := newTestApp(t)
	stopped, ran := false, false
	app.OnStart(func(context.Context) error { return fmt.Errorf("boom") })
	app.OnStop(func(context.Context) error {
		stopped = true
		return nil
	})

	err := app.RunTask(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatal("expected start hook error")
	}
	if ran {
		t.Error("task must not run after a failed start")
	}
	if !stopped {
		t.Error("stop hooks must release what started")
	}
}

func TestRunTaskReadyHookError(t *testing.T) {
	app := newTestApp(t)
	app.OnReady(func(context.Context) error { return fmt.Errorf("not ready") })
	if err := app.RunTask(context.Background(), func(context.Context) error { return nil }); err == nil {
		t.Error("expected ready hook error")
	}
}

func TestRunTaskStopHookError(t *testing.T) {
	app := newTestApp(t)
	later := false
	app.OnStop(func(context.Context) error {
		later = true
		return nil
	})
	app.OnStop(func(context.Context) error { return fmt.Errorf("stop failed") })

	err := app.RunTask(context.Background(), func(context.Context) error { return nil })
	if err == nil {
		t.Error("expected stop hook error")
	}
	if !later {
		t.Error("remaining stop hooks must still run")
	}
}

func TestRunReturnsOnContextCancel(t *testing.T) {
	app := newTestApp(t)
	stopped := false
	app.OnStop(func(context.Context) error {
		stopped = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !stopped {
		t.Error("expected stop hooks to run")
	}
}

func TestShutdown(t *testing.T) {
	app := newTestApp(t)
	calls := 0
	app.OnStop(func(context.Context) error {
		calls++
		return nil
	})
	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 stop call, got %d", calls)
	}
}

func TestWaitForSignalContextCancellation(t *testing.T) {
	app := newTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if sig := app.WaitForSignal(ctx); sig != nil {
		t.Errorf("expected nil signal, got %v", sig)
	}
}
