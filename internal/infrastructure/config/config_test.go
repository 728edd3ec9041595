package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "SQL_DSN", "APP_TIMEZONE", "PRINT_PAGE_SIZE", "HISTORY_PAGE_SIZE", "PHONE_REGION", "RPC_SECRET"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != StoreDynamoDB || cfg.PhoneRegion != "ID" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PrintPageSize != 25 || cfg.HistoryPageSize != 5 {
		t.Fatalf("unexpected page sizes: %+v", cfg)
	}
	if cfg.Location == nil || cfg.Location.String() != "Asia/Jakarta" {
		t.Fatalf("unexpected location: %v", cfg.Location)
	}
	if cfg.EstimatesTable != "estimates" || cfg.InvoicesTable != "invoices" {
		t.Fatalf("unexpected tables: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("mysql without dsn", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mysql")
		t.Setenv("SQL_DSN", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad page size", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("PRINT_PAGE_SIZE", "zero")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoad_SQLiteDefaultDSN(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQL_DSN", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreDriver != StoreSQLite || cfg.SQLDSN != "bengkel.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
