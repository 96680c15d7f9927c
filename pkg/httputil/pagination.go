package httputil

import (
	"strconv"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// ListResponse is the envelope every list endpoint returns.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Pagination
}

func NewListResponse[T any](items []T, total int, p Pagination) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: total, Pagination: p}
}

// ParsePagination reads skip and limit from the query string. A missing limit
// defaults to DefaultLimit and anything above MaxLimit is clamped.
func ParsePagination(c echo.Context) (Pagination, error) {
	p := Pagination{Limit: DefaultLimit}

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return p, apperr.InvalidInput("skip must be a non-negative integer")
		}
		p.Skip = skip
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return p, apperr.InvalidInput("limit must be a non-negative integer")
		}
		p.Limit = limit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p, nil
}

// QueryInt parses an optional integer query parameter, returning def when absent.
func QueryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.InvalidInput("%s must be an integer", name)
	}
	return v, nil
}

// QueryBool parses an optional boolean query parameter, returning def when absent.
func QueryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.InvalidInput("%s must be a boolean", name)
	}
	return v, nil
}
