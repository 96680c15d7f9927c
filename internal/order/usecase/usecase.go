package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer"
	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order"
	"github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/broker"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventOrderCreated = "OrderCreated"

// PriceLookup resolves the current unit price of products in the inventory
// store. SKUs that do not exist are absent from the result.
type PriceLookup interface {
	PricesBySKU(ctx context.Context, skus []string) (map[string]float64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, event broker.Event) error
}

type orderUseCase struct {
	repo      order.Repository
	customers customer.Repository
	prices    PriceLookup
	publisher EventPublisher
	logger    logger.ZapLogger

	bg sync.WaitGroup
}

// NewOrderUseCase wires the order usecase. publisher may be nil when no broker
// is configured.
func NewOrderUseCase(repo order.Repository, customers customer.Repository, prices PriceLookup, publisher EventPublisher, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		customers: customers,
		prices:    prices,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	c, err := uc.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.InvalidInput("customer %s does not exist", input.CustomerID)
	}

	prices, err := uc.resolvePrices(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &model.Order{
		BaseModel:       model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
		CustomerID:      input.CustomerID,
		Status:          input.Status,
		OrderDate:       now,
		ShippingAddress: input.ShippingAddress,
		Items:           make([]model.OrderItem, 0, len(input.Items)),
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if input.OrderDate != nil {
		o.OrderDate = input.OrderDate.UTC()
	}

	for i, in := range input.Items {
		price, ok := prices[in.ProductSKU]
		if in.UnitPrice != nil {
			price, ok = *in.UnitPrice, true
		}
		if !ok {
			return nil, apperr.InvalidInput("product with sku %q not found and no unit_price given", in.ProductSKU)
		}
		o.Items = append(o.Items, model.OrderItem{
			BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			OrderID:    o.ID,
			LineNo:     i + 1,
			ProductSKU: in.ProductSKU,
			Quantity:   in.Quantity,
			UnitPrice:  price,
		})
	}
	o.PriceItems()

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.bg.Add(1)
	go func() {
		defer uc.bg.Done()
		uc.publishCreated(context.WithoutCancel(ctx), o)
	}()

	return o, nil
}

// Wait blocks until pending event publishes finish.
func (uc *orderUseCase) Wait() {
	uc.bg.Wait()
}

// resolvePrices looks up current prices only for items that carry none.
func (uc *orderUseCase) resolvePrices(ctx context.Context, items []dto.CreateOrderItemInput) (map[string]float64, error) {
	var missing []string
	seen := map[string]bool{}
	for _, it := range items {
		if it.UnitPrice == nil && !seen[it.ProductSKU] {
			seen[it.ProductSKU] = true
			missing = append(missing, it.ProductSKU)
		}
	}
	if len(missing) == 0 {
		return map[string]float64{}, nil
	}
	return uc.prices.PricesBySKU(ctx, missing)
}

func (uc *orderUseCase) publishCreated(ctx context.Context, o *model.Order) {
	if uc.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	payload := dto.OrderCreatedEvent{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       make([]dto.OrderCreatedItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		payload.Items = append(payload.Items, dto.OrderCreatedItem{
			ProductSKU: it.ProductSKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}

	event := broker.Event{
		EventID:   uuid.New().String(),
		EventType: EventOrderCreated,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, o.ID, event); err != nil {
		metrics.RecordKafkaPublish(EventOrderCreated, "error")
		uc.logger.Error("failed to publish order event", zap.String("order_id", o.ID), zap.Error(err))
		return
	}
	metrics.RecordKafkaPublish(EventOrderCreated, "ok")
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("order %s not found", id)
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	orders, total, err := uc.repo.FindAll(ctx, filters)
	if err != nil || !filters.WithItems || len(orders) == 0 {
		return orders, total, err
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := uc.repo.FindItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	byOrder := make(map[string][]model.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, total, nil
}
