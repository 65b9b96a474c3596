package config

import (
	"testing"
)

func TestResolveAPIKey_FlagWinsOverEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	key, err := ResolveAPIKey("flag-key")
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "flag-key" {
		t.Errorf("key = %q, want flag-key", key)
	}
}

func TestResolveAPIKey_EnvFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	key, err := ResolveAPIKey("")
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, want env-key", key)
	}
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	if _, err := ResolveAPIKey("  "); err == nil {
		t.Fatal("expected error when no key is resolvable")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputExt != "txt" {
		t.Errorf("OutputExt = %q, want txt", cfg.OutputExt)
	}
	if cfg.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want 1 (sequential)", cfg.Concurrency)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Errorf("RateLimitPerMin = %d, want 0 (disabled)", cfg.RateLimitPerMin)
	}
	if cfg.TimeoutMin <= 0 {
		t.Errorf("TimeoutMin = %d, want > 0", cfg.TimeoutMin)
	}
}
