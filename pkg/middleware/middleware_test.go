package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newServer(log logger.ZapLogger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Use(Metrics())
	e.Use(RequestLogger(log))
	return e
}

func serve(e *echo.Echo, method, target string) (*httptest.ResponseRecorder, ErrorResponse) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var body ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	e := newServer(logger.NewNop())
	e.GET("/missing", func(c echo.Context) error { return apperr.NotFound("product %s not found", "x") })
	e.GET("/bad", func(c echo.Context) error { return apperr.InvalidInput("limit must be non-negative") })
	e.GET("/dup", func(c echo.Context) error { return apperr.Conflict("sku exists") })
	e.GET("/boom", func(c echo.Context) error { return errors.New("pq: connection refused") })

	rec, body := serve(e, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product x not found", body.Error)
	assert.Equal(t, "not_found", body.Kind)
	assert.NotEmpty(t, body.RequestID)

	rec, body = serve(e, http.MethodGet, "/bad")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", body.Kind)

	rec, _ = serve(e, http.MethodGet, "/dup")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", body.Error)
}

func TestErrorHandlerKeepsEchoStatus(t *testing.T) {
	e := newServer(logger.NewNop())

	rec, _ := serve(e, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLoggerLogsFinalStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := newServer(logger.Wrap(zap.New(core)))
	e.GET("/items/:id", func(c echo.Context) error { return apperr.NotFound("no item") })

	rec, _ := serve(e, http.MethodGet, "/items/42")
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), ctx["status"])
	assert.Equal(t, "/items/:id", ctx["route"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
