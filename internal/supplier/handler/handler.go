package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/supplier"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/httputil"
	"github.com/labstack/echo/v4"
)

type SupplierHandler struct {
	uc supplier.UseCase
}

func NewSupplierHandler(uc supplier.UseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) Register(g *echo.Group) {
	g.POST("", h.CreateSupplier)
	g.GET("", h.ListSuppliers)
	g.GET("/:id", h.GetSupplier)
}

func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	input, err := httputil.Bind[dto.CreateSupplierInput](c)
	if err != nil {
		return err
	}

	s, err := h.uc.CreateSupplier(c.Request().Context(), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, err := httputil.ParamID(c, "id", "supplier")
	if err != nil {
		return err
	}

	s, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		return err
	}

	items, total, err := h.uc.ListSuppliers(c.Request().Context(), &dto.SupplierFilters{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httputil.NewListResponse(items, total, page))
}
