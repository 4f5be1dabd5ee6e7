package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/repository"
	"github.com/gunpla-hub/service-storefront/internal/saga"
)

const (
	sid        = "handler-session-1"
	adminToken = "s3cret"
)

type nopPublisher struct{}

func (nopPublisher) PublishEvent(context.Context, string, kafka.CloudEvent) error { return nil }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	now := func() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) }

	products := repository.NewMemoryProductRepository(catalog.SeedProducts())
	discounts := repository.NewMemoryDiscountRepository()
	orders := repository.NewMemoryOrderRepository()
	store := repository.NewMemoryStateStore()

	discountSvc := application.NewDiscountService(discounts, now, logger)
	require.NoError(t, discountSvc.SeedDiscounts(context.Background(), discount.SeedValidFrom, discount.SeedValidTo))
	catalogSvc := application.NewCatalogService(products, logger)
	storefrontSvc := application.NewStorefrontService(store, products, discountSvc, now, nil, logger)
	placer := saga.NewCheckoutSagaService(orders, discounts, adapter.NewSimulatedGateway(0, logger), nopPublisher{}, logger)
	checkoutSvc := application.NewCheckoutService(store, discountSvc, placer, "USD", now, nil, logger)
	orderSvc := application.NewOrderService(orders, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	NewCatalogHandler(catalogSvc).RegisterRoutes(api)
	NewDiscountHandler(discountSvc).RegisterRoutes(api)
	NewStorefrontHandler(storefrontSvc, checkoutSvc).RegisterRoutes(api)
	NewOrderHandler(orderSvc).RegisterRoutes(api)
	NewAdminHandler(discountSvc, orderSvc, catalogSvc).RegisterRoutes(api, adminToken)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Reason  string `json:"reason"`
	} `json:"error"`
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func TestListProducts_QueryFilters(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodGet, "/api/v1/products?category=tools&sort_by=price", nil)
	require.Equal(t, http.StatusOK, code)

	var list application.ProductListDTO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "14", list.Products[0].ID)

	code, _ = do(t, r, http.MethodGet, "/api/v1/products?in_stock=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, r, http.MethodGet, "/api/v1/products/404", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestValidateDiscount_Endpoint(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/discounts/validate", gin.H{"code": "figure10", "subtotal": "40"})
	require.Equal(t, http.StatusOK, code)

	var result application.DiscountValidationDTO
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Valid)
	assert.Equal(t, "minimum_order_not_met", result.Reason)
	assert.Equal(t, "10", result.Shortfall.String())
}

func TestSessionFlow(t *testing.T) {
	r := newRouter(t)
	base := "/api/v1/sessions/" + sid

	code, _ := do(t, r, http.MethodPost, base+"/cart/items", gin.H{"product_id": "3"})
	require.Equal(t, http.StatusOK, code)

	code, env := do(t, r, http.MethodPost, base+"/discount", gin.H{"code": "EXPIRED1"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "REJECTED", env.Error.Code)
	assert.Equal(t, "not_found", env.Error.Reason)

	code, env = do(t, r, http.MethodPost, base+"/discount", gin.H{"code": "GUNDAM20"})
	require.Equal(t, http.StatusOK, code)
	var state application.SessionDTO
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, "159.992", state.Cart.Total.String())

	code, env = do(t, r, http.MethodPost, base+"/checkout", gin.H{
		"customer_email":   "setsuna@example.com",
		"shipping_address": gin.H{"full_name": "Setsuna F. Seiei", "street": "Celestial Being", "city": "Lagrange", "country": "AZ"},
		"payment_method":   gin.H{"type": "card", "last4": "0000"},
	})
	require.Equal(t, http.StatusCreated, code, env)
	var placed application.OrderDTO
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, "processing", placed.Status)

	code, _ = do(t, r, http.MethodGet, "/api/v1/orders/"+placed.ID.String(), nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, r, http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSession_InvalidID(t *testing.T) {
	r := newRouter(t)
	code, env := do(t, r, http.MethodGet, "/api/v1/sessions/bad!", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAdmin_RequiresToken(t *testing.T) {
	r := newRouter(t)

	code, _ := do(t, r, http.MethodGet, "/api/v1/admin/discounts", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := do(t, r, http.MethodGet, "/api/v1/admin/discounts", nil, "X-Admin-Token", adminToken)
	require.Equal(t, http.StatusOK, code)
	var list []application.DiscountDTO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 4)
}

func TestAdmin_DiscountLifecycle(t *testing.T) {
	r := newRouter(t)
	auth := []string{"X-Admin-Token", adminToken}

	body := gin.H{
		"code":       "HAROX",
		"kind":       "fixed",
		"value":      "7.5",
		"valid_from": "2024-01-01T00:00:00Z",
		"valid_to":   "2024-12-31T23:59:59Z",
	}
	code, env := do(t, r, http.MethodPost, "/api/v1/admin/discounts", body, auth...)
	require.Equal(t, http.StatusCreated, code)
	var created application.DiscountDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, _ = do(t, r, http.MethodPost, "/api/v1/admin/discounts", body, auth...)
	assert.Equal(t, http.StatusConflict, code)

	body["kind"] = "bogo"
	code, _ = do(t, r, http.MethodPut, "/api/v1/admin/discounts/"+created.ID.String(), body, auth...)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, r, http.MethodDelete, "/api/v1/admin/discounts/"+created.ID.String(), nil, auth...)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestAdmin_ProductMarkdown(t *testing.T) {
	r := newRouter(t)
	auth := []string{"X-Admin-Token", adminToken}

	code, env := do(t, r, http.MethodPost, "/api/v1/admin/products/3/discount", gin.H{"percentage": 10}, auth...)
	require.Equal(t, http.StatusOK, code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "179.99", p.Price.String())

	code, env = do(t, r, http.MethodDelete, "/api/v1/admin/products/3/discount", nil, auth...)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "199.99", p.Price.String())
}
