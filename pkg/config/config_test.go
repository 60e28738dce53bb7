package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if cfg.Storage.Backend != StorageBackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.CartKey != "cafeOroCart" {
		t.Fatalf("unexpected cart key %q", cfg.Storage.CartKey)
	}
	if cfg.Checkout.ShippingFeeCents != 5000 {
		t.Fatalf("expected shipping fee 5000 cents, got %d", cfg.Checkout.ShippingFeeCents)
	}
	if got := cfg.Checkout.SuccessPanelDelay; got != 500*time.Millisecond {
		t.Fatalf("expected success panel delay 500ms, got %v", got)
	}
	if got := cfg.Notifications.DisplayDuration; got != 2500*time.Millisecond {
		t.Fatalf("expected notification duration 2500ms, got %v", got)
	}
	if cfg.Orders.NumberPrefix != "CO-" {
		t.Fatalf("unexpected order number prefix %q", cfg.Orders.NumberPrefix)
	}
}

func TestLoad_RedisBackendRequiresAddress(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without address to return an error")
	}

	t.Setenv(EnvRedisAddr, "localhost:6379")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.Backend != StorageBackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Storage.Backend)
	}
}

func TestLoad_UnknownBackendRejected(t *testing.T) {
	t.Setenv(EnvStorageBackend, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to return an error")
	}
}
