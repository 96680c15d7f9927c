package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/customer"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/httputil"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	uc customer.UseCase
}

func NewCustomerHandler(uc customer.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) Register(g *echo.Group) {
	g.POST("", h.CreateCustomer)
	g.GET("", h.ListCustomers)
	g.GET("/:id", h.GetCustomer)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	input, err := httputil.Bind[dto.CreateCustomerInput](c)
	if err != nil {
		return err
	}

	cust, err := h.uc.CreateCustomer(c.Request().Context(), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cust)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := httputil.ParamID(c, "id", "customer")
	if err != nil {
		return err
	}

	cust, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		return err
	}

	filters := &dto.CustomerFilters{SearchQuery: c.QueryParam("q"), Skip: page.Skip, Limit: page.Limit}
	items, total, err := h.uc.ListCustomers(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httputil.NewListResponse(items, total, page))
}
