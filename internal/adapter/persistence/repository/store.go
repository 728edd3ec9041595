package repository

import (
	"context"
	"fmt"

	"bengkel_pos/internal/infrastructure/config"
	"bengkel_pos/internal/infrastructure/database"
	"bengkel_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Store bundles the repositories backed by the configured driver.
type Store struct {
	Catalog   interfaces.ICatalogRepository
	Documents interfaces.IDocumentRepository
	Users     interfaces.IUserRepository

	close func() error
}

// Close releases the underlying connection, if the driver holds one.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects to DynamoDB or a SQL database depending on
// cfg.StoreDriver. SQL tables are migrated on open.
func OpenStore(ctx context.Context, cfg config.Config) (*Store, error) {
	log := zap.L().Named("store")
	names := TableNames{
		Prices:    cfg.PricesTable,
		Estimates: cfg.EstimatesTable,
		Invoices:  cfg.InvoicesTable,
		Users:     cfg.UsersTable,
	}

	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("using dynamodb store")
		return &Store{
			Catalog:   NewCatalogDynamoRepository(ddb, names.Prices),
			Documents: NewDocumentDynamoRepository(ddb, names.Estimates, names.Invoices),
			Users:     NewUserDynamoRepository(ddb, names.Users),
		}, nil

	case config.StoreMySQL, config.StoreSQLite:
		db, err := database.OpenSQL(cfg.StoreDriver, cfg.SQLDSN)
		if err != nil {
			return nil, err
		}
		if err := AutoMigrate(db.WithContext(ctx), names); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", cfg.StoreDriver, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		log.Info("using sql store", zap.String("driver", cfg.StoreDriver))
		return &Store{
			Catalog:   NewCatalogGormRepository(db, names),
			Documents: NewDocumentGormRepository(db, names),
			Users:     NewUserGormRepository(db, names),
			close:     sqlDB.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
