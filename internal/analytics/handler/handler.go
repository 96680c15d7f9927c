package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics"
	"github.com/fekuna/omnipos-supplychain-service/pkg/httputil"
	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	uc   analytics.UseCase
	topN int
}

func NewAnalyticsHandler(uc analytics.UseCase, topN int) *AnalyticsHandler {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &AnalyticsHandler{uc: uc, topN: topN}
}

func (h *AnalyticsHandler) Register(g *echo.Group) {
	g.GET("/inventory", h.Inventory)
	g.GET("/orders", h.Orders)
	g.GET("/products/top", h.TopProducts)
	g.GET("/customers", h.Customers)
	g.GET("/revenue/daily", h.DailyRevenue)
}

func (h *AnalyticsHandler) Inventory(c echo.Context) error {
	out, err := h.uc.Inventory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Orders(c echo.Context) error {
	out, err := h.uc.Orders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// TopProducts serves ?limit=N&joined=bool. A negative limit is rejected by the
// aggregation itself.
func (h *AnalyticsHandler) TopProducts(c echo.Context) error {
	limit, err := httputil.QueryInt(c, "limit", h.topN)
	if err != nil {
		return err
	}
	joined, err := httputil.QueryBool(c, "joined", false)
	if err != nil {
		return err
	}

	out, err := h.uc.TopProducts(c.Request().Context(), limit, joined)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) Customers(c echo.Context) error {
	out, err := h.uc.Customers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) DailyRevenue(c echo.Context) error {
	out, err := h.uc.DailyRevenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
