package httputil

import (
	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParamID reads a UUID path parameter. A malformed value cannot name an
// existing row, so it is reported as a missing entity.
func ParamID(c echo.Context, name, entity string) (string, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.NotFound("%s %s not found", entity, raw)
	}
	return id.String(), nil
}

// QueryUUID parses an optional UUID query parameter, returning "" when absent.
func QueryUUID(c echo.Context, name string) (string, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return "", nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.InvalidInput("%s must be a UUID", name)
	}
	return id.String(), nil
}
