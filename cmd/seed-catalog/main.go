// Command seed-catalog writes the 17 default panels into the price list.
//
// By default existing entries are kept and only missing default panels are
// added. With -reset the whole price list is replaced by the defaults.
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
	reset := flag.Bool("reset", false, "replace the whole price list with the defaults")
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

	catalog := usecase.NewCatalogUseCase(store.Catalog)
	seeded, err := seedCatalog(ctx, catalog, *reset)
	if err != nil {
		log.Fatal("seed price list", zap.Error(err))
	}
	log.Info("price list seeded", zap.Int("entries", seeded), zap.Bool("reset", *reset))
}

// seedCatalog returns the number of entries in the stored price list.
func seedCatalog(ctx context.Context, uc usecase.ICatalogUseCase, reset bool) (int, error) {
	defaults := entities.DefaultCatalog()
	if reset {
		return len(defaults), uc.ReplaceAll(ctx, defaults)
	}

	current, err := uc.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	merged := current.Clone()
	for id, entry := range defaults {
		if _, ok := merged[id]; !ok {
			merged[id] = entry
		}
	}
	if len(merged) == len(current) {
		return len(current), nil
	}
	return len(merged), uc.ReplaceAll(ctx, merged)
}
