// Command seed-user creates or resets a staff login.
//
//	seed-user -username admin -name "Pak Budi" -role owner -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bengkel_pos/internal/adapter/persistence/repository"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/infrastructure/config"
	"bengkel_pos/internal/infrastructure/logging"
	"bengkel_pos/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "login name")
	name := flag.String("name", "", "display name")
	role := flag.String("role", entities.DefaultUserRole, "role")
	password := flag.String("password", os.Getenv("SEED_USER_PASSWORD"), "password (or SEED_USER_PASSWORD)")
	flag.Parse()

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

	ctx := context.Background()
	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	user, err := usecase.NewAuthUseCase(store.Users).CreateUser(ctx, *username, *name, *role, *password)
	if err != nil {
		log.Fatal("create user", zap.Error(err))
	}
	log.Info("user saved", zap.String("username", user.Username), zap.String("role", user.Role))
}
