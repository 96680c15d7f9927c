package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics"
	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"go.uber.org/zap"
)

type analyticsUseCase struct {
	repo   analytics.SnapshotRepository
	topN   int
	logger logger.ZapLogger
}

// NewAnalyticsUseCase computes analytics from fresh snapshots on every call.
// topN sizes the top-selling list embedded in order analytics.
func NewAnalyticsUseCase(repo analytics.SnapshotRepository, topN int, log logger.ZapLogger) analytics.UseCase {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &analyticsUseCase{
		repo:   repo,
		topN:   topN,
		logger: log,
	}
}

// observe records one computation. Only store failures count as errors;
// rejected arguments are labelled invalid.
func (uc *analyticsUseCase) observe(report string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case apperr.KindOf(err) == apperr.KindInternal:
		status = "error"
		uc.logger.Error("analytics computation failed", zap.String("report", report), zap.Error(err))
	default:
		status = "invalid"
		uc.logger.Debug("analytics request rejected", zap.String("report", report), zap.Error(err))
	}
	metrics.RecordAnalytics(report, status, time.Since(start).Seconds())
}

func (uc *analyticsUseCase) Inventory(ctx context.Context) (result *analytics.InventoryAnalytics, err error) {
	defer func(start time.Time) { uc.observe("inventory", start, err) }(time.Now())

	snap, err := uc.repo.InventorySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	inv := analytics.AggregateInventory(snap.Products)
	return &inv, nil
}

func (uc *analyticsUseCase) Orders(ctx context.Context) (result *analytics.OrderAnalytics, err error) {
	defer func(start time.Time) { uc.observe("orders", start, err) }(time.Now())

	snap, err := uc.repo.OrderSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := analytics.AggregateOrders(snap.Orders)
	top, err := analytics.TopSellingProducts(snap.Items, uc.topN, nil)
	if err != nil {
		return nil, err
	}
	out.TopSellingProducts = top
	return &out, nil
}

func (uc *analyticsUseCase) TopProducts(ctx context.Context, limit int, joined bool) (result *analytics.TopProducts, err error) {
	defer func(start time.Time) { uc.observe("top_products", start, err) }(time.Now())

	snap, err := uc.repo.OrderSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if !joined {
		items, err := analytics.TopSellingProducts(snap.Items, limit, nil)
		if err != nil {
			return nil, err
		}
		return &analytics.TopProducts{Items: items}, nil
	}

	inv, err := uc.repo.InventorySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	index := analytics.IndexBySKU(inv.Products)

	items, err := analytics.TopSellingProducts(snap.Items, limit, index)
	if err != nil {
		return nil, err
	}
	unresolved := analytics.UnresolvedSKUs(snap.Items, index)
	metrics.RecordUnresolvedSKUs(len(unresolved))
	if len(unresolved) > 0 {
		uc.logger.Debug("order items reference unknown skus", zap.Strings("skus", unresolved))
	}

	return &analytics.TopProducts{Joined: true, Items: items, UnresolvedSKUs: unresolved}, nil
}

func (uc *analyticsUseCase) Customers(ctx context.Context) (result *analytics.CustomerAnalytics, err error) {
	defer func(start time.Time) { uc.observe("customers", start, err) }(time.Now())

	snap, err := uc.repo.OrderSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := analytics.AggregateCustomers(snap.Orders)
	return &out, nil
}

func (uc *analyticsUseCase) DailyRevenue(ctx context.Context) (result []analytics.DailyRevenuePoint, err error) {
	defer func(start time.Time) { uc.observe("daily_revenue", start, err) }(time.Now())

	snap, err := uc.repo.OrderSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.DailyRevenue(snap.Orders), nil
}

func (uc *analyticsUseCase) Report(ctx context.Context) (result *analytics.Report, err error) {
	defer func(start time.Time) { uc.observe("report", start, err) }(time.Now())

	inv, err := uc.repo.InventorySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	ord, err := uc.repo.OrderSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	index := analytics.IndexBySKU(inv.Products)
	orders := analytics.AggregateOrders(ord.Orders)
	if orders.TopSellingProducts, err = analytics.TopSellingProducts(ord.Items, uc.topN, nil); err != nil {
		return nil, err
	}
	topByRevenue, err := analytics.TopGrossingProducts(ord.Items, uc.topN, index)
	if err != nil {
		return nil, err
	}

	return &analytics.Report{
		GeneratedAt:    time.Now().UTC(),
		Inventory:      analytics.AggregateInventory(inv.Products),
		MeanUnitPrice:  analytics.MeanUnitPrice(inv.Products),
		Orders:         orders,
		Customers:      analytics.AggregateCustomers(ord.Orders),
		TopByRevenue:   topByRevenue,
		UnresolvedSKUs: analytics.UnresolvedSKUs(ord.Items, index),
	}, nil
}
