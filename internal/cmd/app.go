package cmd

import (
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/config"
	"github.com/fekuna/omnipos-supplychain-service/internal/admin"
	adminrepo "github.com/fekuna/omnipos-supplychain-service/internal/admin/repository"
	adminuc "github.com/fekuna/omnipos-supplychain-service/internal/admin/usecase"
	"github.com/fekuna/omnipos-supplychain-service/internal/analytics"
	analyticsrepo "github.com/fekuna/omnipos-supplychain-service/internal/analytics/repository"
	analyticsuc "github.com/fekuna/omnipos-supplychain-service/internal/analytics/usecase"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer"
	customerrepo "github.com/fekuna/omnipos-supplychain-service/internal/customer/repository"
	customeruc "github.com/fekuna/omnipos-supplychain-service/internal/customer/usecase"
	"github.com/fekuna/omnipos-supplychain-service/internal/order"
	orderrepo "github.com/fekuna/omnipos-supplychain-service/internal/order/repository"
	orderuc "github.com/fekuna/omnipos-supplychain-service/internal/order/usecase"
	"github.com/fekuna/omnipos-supplychain-service/internal/product"
	productrepo "github.com/fekuna/omnipos-supplychain-service/internal/product/repository"
	productuc "github.com/fekuna/omnipos-supplychain-service/internal/product/usecase"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier"
	supplierrepo "github.com/fekuna/omnipos-supplychain-service/internal/supplier/repository"
	supplieruc "github.com/fekuna/omnipos-supplychain-service/internal/supplier/usecase"
	"github.com/fekuna/omnipos-supplychain-service/migrations"
	"github.com/fekuna/omnipos-supplychain-service/pkg/broker"
	"github.com/fekuna/omnipos-supplychain-service/pkg/cache"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/fekuna/omnipos-supplychain-service/pkg/search"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// backends selects the optional infrastructure a command connects to.
type backends struct {
	cache  bool
	search bool
	broker bool
}

// app holds the connections shared by every command.
type app struct {
	cfg    *config.Config
	logger logger.ZapLogger

	inventoryDB *sqlx.DB
	orderDB     *sqlx.DB
	redis       *cache.RedisClient
	es          *search.Client
	producer    *broker.KafkaProducer

	closers []func() error
}

type usecases struct {
	suppliers supplier.UseCase
	products  product.UseCase
	customers customer.UseCase
	orders    order.UseCase
	analytics analytics.UseCase
	admin     admin.UseCase
}

func newApp(cfg *config.Config, want backends) (*app, error) {
	a := &app{cfg: cfg, logger: logger.NewZapLogger(cfg.ZapLogger())}
	a.closers = append(a.closers, func() error { _ = a.logger.Sync(); return nil })

	// 1. Databases
	var err error
	if a.inventoryDB, err = a.connect(cfg.InventoryPostgres); err != nil {
		a.Close()
		return nil, err
	}
	if a.orderDB, err = a.connect(cfg.OrderPostgres); err != nil {
		a.Close()
		return nil, err
	}

	// 2. Redis
	if want.cache && cfg.Redis.Enabled {
		a.redis, err = cache.NewRedisClient(cfg.Redis.Cache())
		if err != nil {
			a.logger.Warn("Could not connect to Redis, product lists are not cached", zap.Error(err))
			a.redis = nil
		} else {
			a.closers = append(a.closers, a.redis.Close)
			a.logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 3. Elasticsearch
	if want.search && cfg.Elastic.Enabled {
		a.es, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			a.logger.Warn("Could not connect to Elasticsearch, product search uses the database", zap.Error(err))
			a.es = nil
		} else {
			a.logger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 4. Kafka
	if want.broker && cfg.Kafka.Enabled {
		a.producer, err = broker.NewProducer(&broker.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, a.producer.Close)
		a.logger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	return a, nil
}

func (a *app) connect(pc config.PostgresConfig) (*sqlx.DB, error) {
	db, err := postgres.NewPostgres(pc.Database())
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	a.logger.Info("Connected to PostgreSQL database", zap.String("db_name", pc.DBName))
	return db, nil
}

// Close releases connections in reverse order of opening.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *app) migrate() error {
	stores := []struct {
		db         *sqlx.DB
		dir, table string
	}{
		{a.inventoryDB, migrations.InventoryDir, migrations.InventoryTable},
		{a.orderDB, migrations.OrdersDir, migrations.OrdersTable},
	}
	for _, s := range stores {
		version, err := postgres.Migrate(s.db, migrations.FS, s.dir, s.table)
		if err != nil {
			return fmt.Errorf("migrate %s store: %w", s.dir, err)
		}
		a.logger.Info("Migrations applied", zap.String("store", s.dir), zap.Uint("version", version))
	}
	return nil
}

// drain waits for background work the usecases started, such as search index
// syncs and order events, so nothing is lost when the process exits.
func (uc *usecases) drain() {
	for _, u := range []any{uc.products, uc.orders} {
		if w, ok := u.(interface{ Wait() }); ok {
			w.Wait()
		}
	}
}

func (a *app) usecases() *usecases {
	suppliers := supplierrepo.NewPGRepository(a.inventoryDB)
	products := productrepo.NewPGRepository(a.inventoryDB)
	customers := customerrepo.NewPGRepository(a.orderDB)
	orders := orderrepo.NewPGRepository(a.orderDB)

	uc := &usecases{
		suppliers: supplieruc.NewSupplierUseCase(suppliers, a.logger),
		customers: customeruc.NewCustomerUseCase(customers, a.logger),
		analytics: analyticsuc.NewAnalyticsUseCase(
			analyticsrepo.NewPGRepository(a.inventoryDB, a.orderDB), a.cfg.Analytics.TopN, a.logger),
	}

	// Optional backends are passed as untyped nil when absent.
	var listCache productuc.ListCache
	var cacheCleaner adminuc.CacheCleaner
	if a.redis != nil {
		listCache, cacheCleaner = a.redis, a.redis
	}
	var index productuc.SearchIndex
	var indexDropper adminuc.IndexDropper
	if a.es != nil {
		index, indexDropper = a.es, a.es
	}
	var publisher orderuc.EventPublisher
	if a.producer != nil {
		publisher = a.producer
	}

	uc.products = productuc.NewProductUseCase(products, suppliers, listCache, index, a.logger)
	uc.orders = orderuc.NewOrderUseCase(orders, customers, uc.products, publisher, a.logger)
	uc.admin = adminuc.NewAdminUseCase(
		adminrepo.NewPGRepository(a.inventoryDB, a.orderDB), cacheCleaner, indexDropper, a.logger)
	return uc
}
