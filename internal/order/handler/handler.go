package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order"
	"github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/httputil"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc order.UseCase
}

func NewOrderHandler(uc order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) Register(g *echo.Group) {
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	input, err := httputil.Bind[dto.CreateOrderInput](c)
	if err != nil {
		return err
	}

	o, err := h.uc.CreateOrder(c.Request().Context(), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := httputil.ParamID(c, "id", "order")
	if err != nil {
		return err
	}

	o, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		return err
	}
	withItems, err := httputil.QueryBool(c, "with_items", false)
	if err != nil {
		return err
	}
	customerID, err := httputil.QueryUUID(c, "customer_id")
	if err != nil {
		return err
	}

	status := model.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return apperr.InvalidInput("unknown order status %q", status)
	}

	filters := &dto.OrderFilters{
		CustomerID: customerID,
		Status:     status,
		WithItems:  withItems,
		Skip:       page.Skip,
		Limit:      page.Limit,
	}
	items, total, err := h.uc.ListOrders(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httputil.NewListResponse(items, total, page))
}
