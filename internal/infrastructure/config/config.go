// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMySQL    = "mysql"
	StoreSQLite   = "sqlite"
)

// Config holds every setting the service reads at startup.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORE_DRIVER: dynamodb | mysql | sqlite (default: dynamodb)
//   - SQL_DSN (required for mysql; sqlite defaults to bengkel.db)
//   - PRICES_TABLE, ESTIMATES_TABLE, INVOICES_TABLE, USERS_TABLE
//   - APP_TIMEZONE (default: Asia/Jakarta)
//   - PHONE_REGION (default: ID)
//   - RPC_SECRET (optional; when set /rpc calls must carry it)
//   - LOG_LEVEL (default: info)
//   - PRINT_PAGE_SIZE (default: 25), HISTORY_PAGE_SIZE (default: 5)
//   - SHOP_NAME
//
// AWS_REGION and DYNAMODB_ENDPOINT are read by the database package.
type Config struct {
	Port            string
	StoreDriver     string
	SQLDSN          string
	PricesTable     string
	EstimatesTable  string
	InvoicesTable   string
	UsersTable      string
	Location        *time.Location
	PhoneRegion     string
	RPCSecret       string
	LogLevel        string
	PrintPageSize   int
	HistoryPageSize int
	ShopName        string
}

func Load() (Config, error) {
	cfg := Config{
		Port:           getenvDefault("PORT", "8080"),
		StoreDriver:    strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		SQLDSN:         os.Getenv("SQL_DSN"),
		PricesTable:    getenvDefault("PRICES_TABLE", "prices"),
		EstimatesTable: getenvDefault("ESTIMATES_TABLE", "estimates"),
		InvoicesTable:  getenvDefault("INVOICES_TABLE", "invoices"),
		UsersTable:     getenvDefault("USERS_TABLE", "users"),
		PhoneRegion:    strings.ToUpper(getenvDefault("PHONE_REGION", "ID")),
		RPCSecret:      os.Getenv("RPC_SECRET"),
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
		ShopName:       getenvDefault("SHOP_NAME", "Bengkel Las & Cat"),
	}

	switch cfg.StoreDriver {
	case StoreDynamoDB:
	case StoreSQLite:
		if cfg.SQLDSN == "" {
			cfg.SQLDSN = "bengkel.db"
		}
	case StoreMySQL:
		if cfg.SQLDSN == "" {
			return Config{}, fmt.Errorf("SQL_DSN is required for STORE_DRIVER=%s", cfg.StoreDriver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	tz := getenvDefault("APP_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	if cfg.PrintPageSize, err = getenvInt("PRINT_PAGE_SIZE", 25); err != nil {
		return Config{}, err
	}
	if cfg.HistoryPageSize, err = getenvInt("HISTORY_PAGE_SIZE", 5); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
