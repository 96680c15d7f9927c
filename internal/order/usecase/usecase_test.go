package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	customerdto "github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/broker"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerID = "7f1c8a2e-3c1b-4f7e-9a55-0d2b6a1f4c10"

type memoryRepo struct {
	orders    []model.Order
	createErr error
}

func (r *memoryRepo) Create(_ context.Context, o *model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) FindAll(_ context.Context, _ *dto.OrderFilters) ([]model.Order, int, error) {
	out := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		o.Items = nil
		out[i] = o
	}
	return out, len(out), nil
}

func (r *memoryRepo) FindItemsByOrderIDs(_ context.Context, ids []string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	for _, o := range r.orders {
		for _, id := range ids {
			if o.ID == id {
				items = append(items, o.Items...)
			}
		}
	}
	return items, nil
}

func (r *memoryRepo) FetchAll(context.Context) ([]model.Order, error) { return r.orders, nil }

func (r *memoryRepo) FetchAllItems(context.Context) ([]model.OrderItem, error) { return nil, nil }

type customerRepo struct{}

func (customerRepo) Create(context.Context, *model.Customer) error { return nil }

func (customerRepo) FindByID(_ context.Context, id string) (*model.Customer, error) {
	if id != customerID {
		return nil, nil
	}
	return &model.Customer{BaseModel: model.BaseModel{ID: id}}, nil
}

func (customerRepo) FindAll(context.Context, *customerdto.CustomerFilters) ([]model.Customer, int, error) {
	return nil, 0, nil
}

func (customerRepo) IsEmailUnique(context.Context, string) (bool, error) { return true, nil }

type priceTable struct {
	prices map[string]float64
	asked  [][]string
}

func (p *priceTable) PricesBySKU(_ context.Context, skus []string) (map[string]float64, error) {
	p.asked = append(p.asked, skus)
	out := map[string]float64{}
	for _, sku := range skus {
		if v, ok := p.prices[sku]; ok {
			out[sku] = v
		}
	}
	return out, nil
}

type recordingPublisher struct {
	events chan broker.Event
	keys   chan string
}

func newPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan broker.Event, 1), keys: make(chan string, 1)}
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event broker.Event) error {
	p.keys <- key
	p.events <- event
	return nil
}

func price(v float64) *float64 { return &v }

func TestCreateOrderResolvesMissingPrices(t *testing.T) {
	prices := &priceTable{prices: map[string]float64{"A": 2.5, "B": 100}}
	repo := &memoryRepo{}
	uc := NewOrderUseCase(repo, customerRepo{}, prices, nil, logger.NewNop())

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID:      customerID,
		ShippingAddress: "1 Road",
		Items: []dto.CreateOrderItemInput{
			{ProductSKU: "A", Quantity: 4},
			{ProductSKU: "B", Quantity: 1, UnitPrice: price(80)},
			{ProductSKU: "A", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A"}}, prices.asked, "only unpriced SKUs are looked up, once each")
	assert.Equal(t, model.OrderStatusPending, o.Status)
	require.Len(t, o.Items, 3)
	assert.Equal(t, 10.0, o.Items[0].TotalPrice)
	assert.Equal(t, 80.0, o.Items[1].UnitPrice, "explicit price wins over catalog price")
	assert.Equal(t, 92.5, o.TotalAmount)
	for i, it := range o.Items {
		assert.Equal(t, o.ID, it.OrderID)
		assert.Equal(t, i+1, it.LineNo)
	}
	assert.Len(t, repo.orders, 1)
}

func TestCreateOrderUnknownSKUWithoutPrice(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewOrderUseCase(repo, customerRepo{}, &priceTable{}, nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "ghost", Quantity: 1}},
	})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
	assert.Empty(t, repo.orders)
}

func TestCreateOrderUnknownSKUWithPriceIsAccepted(t *testing.T) {
	uc := NewOrderUseCase(&memoryRepo{}, customerRepo{}, &priceTable{}, nil, logger.NewNop())

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "ghost", Quantity: 2, UnitPrice: price(3)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, o.TotalAmount)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	uc := NewOrderUseCase(&memoryRepo{}, customerRepo{}, &priceTable{}, nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{CustomerID: "nobody"})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestCreateOrderKeepsGivenStatusAndDate(t *testing.T) {
	uc := NewOrderUseCase(&memoryRepo{}, customerRepo{}, &priceTable{}, nil, logger.NewNop())
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Status:     model.OrderStatusDelivered,
		OrderDate:  &when,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "A", Quantity: 1, UnitPrice: price(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, o.Status)
	assert.Equal(t, time.UTC, o.OrderDate.Location())
	assert.True(t, when.Equal(o.OrderDate))
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	pub := newPublisher()
	uc := NewOrderUseCase(&memoryRepo{}, customerRepo{}, &priceTable{}, pub, logger.NewNop())

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "A", Quantity: 3, UnitPrice: price(2)}},
	})
	require.NoError(t, err)

	select {
	case ev := <-pub.events:
		assert.Equal(t, o.ID, <-pub.keys)
		assert.Equal(t, EventOrderCreated, ev.EventType)
		payload, ok := ev.Payload.(dto.OrderCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, 6.0, payload.TotalAmount)
		assert.Equal(t, []dto.OrderCreatedItem{{ProductSKU: "A", Quantity: 3, UnitPrice: 2}}, payload.Items)
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestCreateOrderDoesNotPublishOnFailure(t *testing.T) {
	pub := newPublisher()
	uc := NewOrderUseCase(&memoryRepo{createErr: errors.New("tx aborted")}, customerRepo{}, &priceTable{}, pub, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "A", Quantity: 1, UnitPrice: price(1)}},
	})
	require.Error(t, err)

	uc.(interface{ Wait() }).Wait()
	assert.Empty(t, pub.events)
}

func TestListOrdersWithItems(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewOrderUseCase(repo, customerRepo{}, &priceTable{}, nil, logger.NewNop())
	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerID: customerID,
		Items:      []dto.CreateOrderItemInput{{ProductSKU: "A", Quantity: 1, UnitPrice: price(1)}},
	})
	require.NoError(t, err)

	orders, _, err := uc.ListOrders(context.Background(), &dto.OrderFilters{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, orders[0].Items)

	orders, _, err = uc.ListOrders(context.Background(), &dto.OrderFilters{Limit: 10, WithItems: true})
	require.NoError(t, err)
	assert.Len(t, orders[0].Items, 1)
}

func TestGetOrderNotFound(t *testing.T) {
	uc := NewOrderUseCase(&memoryRepo{}, customerRepo{}, &priceTable{}, nil, logger.NewNop())

	_, err := uc.GetOrder(context.Background(), "nope")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
