package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/fekuna/omnipos-supplychain-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownSupplier = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"

type fakeUseCase struct {
	created     *dto.CreateSupplierInput
	lookups     []string
	lastFilters *dto.SupplierFilters
}

func (f *fakeUseCase) CreateSupplier(_ context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	f.created = input
	return &model.Supplier{BaseModel: model.BaseModel{ID: knownSupplier}, Name: input.Name}, nil
}

func (f *fakeUseCase) GetSupplier(_ context.Context, id string) (*model.Supplier, error) {
	f.lookups = append(f.lookups, id)
	if id != knownSupplier {
		return nil, apperr.NotFound("supplier %s not found", id)
	}
	return &model.Supplier{BaseModel: model.BaseModel{ID: id}, Name: "Acme"}, nil
}

func (f *fakeUseCase) ListSuppliers(_ context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error) {
	f.lastFilters = filters
	return nil, 0, nil
}

func do(uc *fakeUseCase, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger.NewNop())
	NewSupplierHandler(uc).Register(e.Group("/suppliers"))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetSupplier(t *testing.T) {
	uc := &fakeUseCase{}

	rec := do(uc, http.MethodGet, "/suppliers/"+strings.ToUpper(knownSupplier), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Acme"`)
	assert.Equal(t, []string{knownSupplier}, uc.lookups, "id is passed on in canonical form")
}

func TestGetSupplierMalformedID(t *testing.T) {
	uc := &fakeUseCase{}
	rec := do(uc, http.MethodGet, "/suppliers/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"supplier abc not found","kind":"not_found"}`, rec.Body.String())
	assert.Empty(t, uc.lookups)
}

func TestCreateSupplier(t *testing.T) {
	uc := &fakeUseCase{}

	rec := do(uc, http.MethodPost, "/suppliers", `{"name":"Acme","contact_person":"Bo","email":"bad","phone":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.created)

	rec = do(uc, http.MethodPost, "/suppliers", `{"name":"Acme","contact_person":"Bo","email":"bo@acme.test","phone":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "bo@acme.test", uc.created.Email)
}

func TestListSuppliersPagination(t *testing.T) {
	uc := &fakeUseCase{}
	rec := do(uc, http.MethodGet, "/suppliers?skip=10&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &dto.SupplierFilters{Skip: 10, Limit: 5}, uc.lastFilters)
	assert.JSONEq(t, `{"items":[],"total":0,"skip":10,"limit":5}`, rec.Body.String())
}
