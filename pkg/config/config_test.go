package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Ledger.BudgetAlertPercent != 90 {
		t.Errorf("expected budget threshold 90, got %v", cfg.Ledger.BudgetAlertPercent)
	}
	if cfg.Ledger.LargeTransactionPercent != 25 {
		t.Errorf("expected large-transaction threshold 25, got %v", cfg.Ledger.LargeTransactionPercent)
	}
	if cfg.Ledger.DefaultPageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.Ledger.DefaultPageSize)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected caching disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("expected 24h token expiration, got %v", cfg.JWT.Expiration)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("BUDGET_ALERT_PERCENT", "80")
	t.Setenv("LARGE_TRANSACTION_PERCENT", "30")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "9191" {
		t.Errorf("expected port 9191, got %s", cfg.Server.Port)
	}
	if cfg.Ledger.BudgetAlertPercent != 80 {
		t.Errorf("expected budget threshold 80, got %v", cfg.Ledger.BudgetAlertPercent)
	}
	if cfg.Ledger.LargeTransactionPercent != 30 {
		t.Errorf("expected large-transaction threshold 30, got %v", cfg.Ledger.LargeTransactionPercent)
	}
	if cfg.Ledger.DefaultPageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.Ledger.DefaultPageSize)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr override, got %q", cfg.Redis.Addr)
	}
}
