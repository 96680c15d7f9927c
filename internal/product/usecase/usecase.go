package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/product"
	"github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier"
	"github.com/fekuna/omnipos-supplychain-service/pkg/cache"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/fekuna/omnipos-supplychain-service/pkg/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	IndexName      = "products"
	CachePrefix    = "products:list:"
	listCacheTTL   = 5 * time.Minute
	productMapping = `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"description": { "type": "text" },
				"sku": { "type": "keyword" },
				"category": { "type": "keyword" },
				"supplier_id": { "type": "keyword" },
				"unit_price": { "type": "double" },
				"stock_quantity": { "type": "integer" },
				"reorder_point": { "type": "integer" },
				"created_at": { "type": "date" }
			}
		}
	}`
)

// ListCache is the subset of *cache.RedisClient used for product list pages.
type ListCache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

// SearchIndex is the subset of *search.Client used for product search.
type SearchIndex interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc any) error
	Search(ctx context.Context, index string, query map[string]any) (*search.SearchResponse, error)
}

type productUseCase struct {
	repo      product.Repository
	suppliers supplier.Repository
	cache     ListCache
	es        SearchIndex
	logger    logger.ZapLogger

	// listGen advances on every invalidation. A page read under an older
	// generation is not written back.
	listGen atomic.Uint64
	bg      sync.WaitGroup
}

// NewProductUseCase wires the product usecase. cache and es may be nil, in
// which case listing goes straight to the database.
func NewProductUseCase(repo product.Repository, suppliers supplier.Repository, cache ListCache, es SearchIndex, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		suppliers: suppliers,
		cache:     cache,
		es:        es,
		logger:    log,
	}
}

type cachedPage struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count"`
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	unique, err := uc.repo.IsSKUUnique(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperr.Conflict("product with sku %q already exists", input.SKU)
	}

	if input.SupplierID != nil {
		s, err := uc.suppliers.FindByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, apperr.InvalidInput("supplier %s does not exist", *input.SupplierID)
		}
	}

	p := &model.Product{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: time.Now().UTC()},
		Name:          input.Name,
		SKU:           input.SKU,
		Description:   input.Description,
		UnitPrice:     input.UnitPrice,
		StockQuantity: input.StockQuantity,
		ReorderPoint:  input.ReorderPoint,
		Category:      input.Category,
		SupplierID:    input.SupplierID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)

	uc.bg.Add(1)
	go func() {
		defer uc.bg.Done()
		uc.syncToElastic(context.WithoutCancel(ctx), p)
	}()

	return p, nil
}

// Wait blocks until pending search index syncs finish.
func (uc *productUseCase) Wait() {
	uc.bg.Wait()
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := uc.es.CreateIndex(ctx, IndexName, productMapping); err != nil {
		uc.logger.Warn("failed to ensure product index", zap.Error(err))
	}
	if err := uc.es.Index(ctx, IndexName, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("sku", p.SKU), zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product %s not found", id)
	}
	return p, nil
}

func (uc *productUseCase) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	p, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product with sku %q not found", sku)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	// 1. Cache
	cacheKey := uc.cacheKey(filters)
	if uc.cache != nil && cacheKey != "" {
		var page cachedPage
		err := uc.cache.GetJSON(ctx, cacheKey, &page)
		switch {
		case err == nil:
			metrics.RecordCacheLookup(true)
			return page.Products, page.Count, nil
		case errors.Is(err, cache.ErrCacheMiss):
			metrics.RecordCacheLookup(false)
		default:
			uc.logger.Warn("product cache read failed", zap.Error(err))
		}
	}

	// 2. Search index for free-text queries
	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.searchIndex(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	// 3. Database
	gen := uc.listGen.Load()
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if uc.cache != nil && cacheKey != "" && uc.listGen.Load() == gen {
		if err := uc.cache.SetJSON(ctx, cacheKey, cachedPage{Products: products, Count: count}, listCacheTTL); err != nil {
			uc.logger.Warn("product cache write failed", zap.Error(err))
		}
	}
	return products, count, nil
}

func (uc *productUseCase) searchIndex(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	must := []map[string]any{
		{
			"query_string": map[string]any{
				"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
				"fields": []string{"name^3", "sku", "description"},
			},
		},
	}
	if filters.Category != "" {
		must = append(must, map[string]any{"term": map[string]any{"category": filters.Category}})
	}
	if filters.LowStock {
		must = append(must, map[string]any{
			"script": map[string]any{
				"script": "doc['stock_quantity'].value <= doc['reorder_point'].value",
			},
		})
	}

	q := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"from":  filters.Skip,
		"size":  filters.Limit,
	}

	res, err := uc.es.Search(ctx, IndexName, q)
	if err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			return nil, 0, fmt.Errorf("decode hit %s: %w", hit.ID, err)
		}
		products = append(products, p)
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) ListLowStock(ctx context.Context, skip, limit int) ([]model.Product, int, error) {
	return uc.ListProducts(ctx, &dto.ProductFilters{LowStock: true, Skip: skip, Limit: limit})
}

func (uc *productUseCase) PricesBySKU(ctx context.Context, skus []string) (map[string]float64, error) {
	products, err := uc.repo.FindBySKUs(ctx, skus)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.SKU] = p.UnitPrice
	}
	return prices, nil
}

func (uc *productUseCase) cacheKey(filters *dto.ProductFilters) string {
	data, err := json.Marshal(filters)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s%x", CachePrefix, md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.listGen.Add(1)
	if _, err := uc.cache.DeleteByPattern(ctx, CachePrefix+"*"); err != nil {
		uc.logger.Warn("product cache invalidation failed", zap.Error(err))
	}
}
