package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/boutique/internal/catalog"
	"github.com/vladislavdragonenkov/boutique/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/boutique/internal/health"
	"github.com/vladislavdragonenkov/boutique/internal/storage/memory"
	"github.com/vladislavdragonenkov/boutique/internal/storage/postgres"
)

// runtimeDependencies собирает репозитории и служебные функции выбранного хранилища.
type runtimeDependencies struct {
	orders   domain.OrderRepository
	items    domain.ItemRepository
	timeline domain.TimelineRepository
	outbox   domain.OutboxRepository
	catalog  domain.CatalogGateway
	tx       domain.TxManager

	storageChecker healthcheck.Checker
	closeFn        func() error
}

func (d *runtimeDependencies) close() error {
	if d == nil || d.closeFn == nil {
		return nil
	}
	return d.closeFn()
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if driver == "" {
		driver = StorageDriverMemory
	}

	switch driver {
	case StorageDriverMemory:
		return initMemoryDependencies(cfg, logger)
	case StorageDriverPostgres:
		return initPostgresDependencies(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func loadCatalogSeed(path string) (catalog.Seed, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.DefaultSeed(), nil
	}
	seed, err := catalog.LoadSeedFile(path)
	if err != nil {
		return catalog.Seed{}, fmt.Errorf("load catalog seed: %w", err)
	}
	return seed, nil
}

func initMemoryDependencies(cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	seed, err := loadCatalogSeed(cfg.CatalogSeedPath)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	logger.WithFields(log.Fields{
		"customers": len(seed.Customers),
		"products":  len(seed.Products),
	}).Info("memory storage initialized")

	return &runtimeDependencies{
		orders:         store.Orders(),
		items:          store.Items(),
		timeline:       store.Timeline(),
		outbox:         store.Outbox(),
		catalog:        catalog.FromSeed(seed),
		tx:             store,
		storageChecker: healthcheck.NewPingChecker("storage", store),
	}, nil
}

func initPostgresDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	dsn := strings.TrimSpace(cfg.PostgresDSN)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required for storage driver %q", StorageDriverPostgres)
	}

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.PostgresAutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("postgres migrations applied")
	}

	catalogRepo := postgres.NewCatalogRepository(store)
	if strings.TrimSpace(cfg.CatalogSeedPath) != "" {
		seed, err := loadCatalogSeed(cfg.CatalogSeedPath)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		if err := catalogRepo.Upsert(ctx, seed.DomainCustomers(), seed.DomainProducts()); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		logger.WithField("path", cfg.CatalogSeedPath).Info("catalog seed loaded into postgres")
	}

	logger.Info("postgres storage initialized")

	return &runtimeDependencies{
		orders:         postgres.NewOrderRepository(store),
		items:          postgres.NewItemRepository(store),
		timeline:       postgres.NewTimelineRepository(store),
		outbox:         postgres.NewOutboxRepository(store),
		catalog:        catalogRepo,
		tx:             store,
		storageChecker: healthcheck.NewPingChecker("storage", store),
		closeFn:        store.Close,
	}, nil
}
