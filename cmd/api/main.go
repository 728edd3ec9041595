package main

import (
	"context"
	"fmt"
	"os"

	"bengkel_pos/internal/adapter/http/routes"
	"bengkel_pos/internal/infrastructure/config"
	"bengkel_pos/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Bengkel POS API
// @version         1.0
// @description     Estimates, invoices and the panel price list for a body and paint shop.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
