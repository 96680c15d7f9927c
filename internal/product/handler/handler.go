package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/product"
	"github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/httputil"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc product.UseCase
}

func NewProductHandler(uc product.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) Register(g *echo.Group) {
	g.POST("", h.CreateProduct)
	g.GET("", h.ListProducts)
	g.GET("/low-stock", h.ListLowStock)
	g.GET("/sku/:sku", h.GetProductBySKU)
	g.GET("/:id", h.GetProduct)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, err := httputil.Bind[dto.CreateProductInput](c)
	if err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := httputil.ParamID(c, "id", "product")
	if err != nil {
		return err
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) GetProductBySKU(c echo.Context) error {
	p, err := h.uc.GetProductBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		return err
	}

	filters := &dto.ProductFilters{
		Category:    c.QueryParam("category"),
		SearchQuery: c.QueryParam("q"),
		Skip:        page.Skip,
		Limit:       page.Limit,
	}
	items, total, err := h.uc.ListProducts(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httputil.NewListResponse(items, total, page))
}

func (h *ProductHandler) ListLowStock(c echo.Context) error {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		return err
	}

	items, total, err := h.uc.ListLowStock(c.Request().Context(), page.Skip, page.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httputil.NewListResponse(items, total, page))
}
