package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/admin"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc admin.UseCase
}

func NewAdminHandler(uc admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) Register(g *echo.Group) {
	g.DELETE("/data", h.ResetData)
}

func (h *AdminHandler) ResetData(c echo.Context) error {
	res, err := h.uc.Reset(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
