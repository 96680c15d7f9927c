package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/admin"
	productuc "github.com/fekuna/omnipos-supplychain-service/internal/product/usecase"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"go.uber.org/zap"
)

type CacheCleaner interface {
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

type IndexDropper interface {
	DeleteIndex(ctx context.Context, index string) error
}

type adminUseCase struct {
	repo   admin.Repository
	cache  CacheCleaner
	index  IndexDropper
	logger logger.ZapLogger
}

// NewAdminUseCase wires the reset usecase. cache and index may be nil.
func NewAdminUseCase(repo admin.Repository, cache CacheCleaner, index IndexDropper, log logger.ZapLogger) admin.UseCase {
	return &adminUseCase{repo: repo, cache: cache, index: index, logger: log}
}

// Reset empties the order store, then the inventory store, then drops the
// derived product cache and search index. The stores are cleared in separate
// transactions; a failure in the second leaves the first cleared.
func (uc *adminUseCase) Reset(ctx context.Context) (*admin.ResetResult, error) {
	uc.logger.Warn("clearing all data")

	result := &admin.ResetResult{Deleted: map[string]int64{}}

	orders, err := uc.repo.ClearOrders(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.repo.ClearInventory(ctx)
	if err != nil {
		return nil, err
	}
	for _, counts := range []map[string]int64{orders, inventory} {
		for table, n := range counts {
			result.Deleted[table] = n
		}
	}

	if uc.cache != nil {
		n, err := uc.cache.DeleteByPattern(ctx, productuc.CachePrefix+"*")
		if err != nil {
			uc.logger.Warn("product cache clear failed", zap.Error(err))
		}
		result.CacheKeysDeleted = n
	}

	if uc.index != nil {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := uc.index.DeleteIndex(ctx, productuc.IndexName); err != nil {
			uc.logger.Warn("product index drop failed", zap.Error(err))
		} else {
			result.IndexDropped = true
		}
	}

	fields := make([]zap.Field, 0, len(result.Deleted))
	for table, n := range result.Deleted {
		fields = append(fields, zap.Int64(table, n))
	}
	uc.logger.Info("all data cleared", fields...)
	return result, nil
}
