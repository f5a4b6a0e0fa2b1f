package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/services"
	"cakeshop-api/internal/store/memory"
)

type testEnv struct {
	router   http.Handler
	products *memory.ProductStore
	orders   *memory.OrderStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := memory.NewProductStore()
	orders := memory.NewOrderStore()
	settings := memory.NewSettingsStore()

	authService := services.NewAuthService(
		"test-secret", services.TokenTTL, memory.NewAdminStore(), "admin", "admin123", zerolog.Nop(),
	)

	r := SetupRouter(Deps{
		Products:       products,
		Orders:         orders,
		Settings:       settings,
		AuthService:    authService,
		AllowedOrigins: []string{"*"},
	}, zerolog.Nop())

	return &testEnv{router: r, products: products, orders: orders}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/admin/login", "", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func sampleProduct(name, category string) models.ProductInput {
	return models.ProductInput{
		Name:        name,
		Description: "Bolo de teste",
		Price:       120.0,
		Category:    category,
		ImageURL:    "https://example.com/bolo.jpg",
	}
}

func sampleOrder() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Maria Silva",
		"customer_phone":   "(11) 99999-0000",
		"customer_address": "Rua das Flores, 123",
		"items": []map[string]interface{}{
			{"product_id": "abc", "name": "Bolo 15cm", "price": 90.0, "quantity": 1},
		},
		"subtotal":       90.0,
		"delivery_fee":   5.0,
		"total":          95.0,
		"payment_method": "pix",
	}
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/login", "", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	rec = env.do(t, http.MethodPost, "/api/admin/login", "", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// No token, no write.
	rec := env.do(t, http.MethodPost, "/api/products", "", sampleProduct("Bolo 15cm", "Bolos Redondos"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products", token, sampleProduct("Bolo 15cm", "Bolos Redondos"))
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Bolo 15cm", created.Name)
	assert.Equal(t, 120.0, created.Price)

	// Reads are open.
	rec = env.do(t, http.MethodGet, "/api/products/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// Replace preserves id and created_at.
	update := sampleProduct("Bolo 15cm Premium", "Bolos Redondos")
	update.Price = 150.0
	rec = env.do(t, http.MethodPut, "/api/products/"+created.ID, token, update)
	require.Equal(t, http.StatusOK, rec.Code)

	var replaced models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replaced))
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)
	assert.Equal(t, "Bolo 15cm Premium", replaced.Name)
	assert.Equal(t, 150.0, replaced.Price)

	rec = env.do(t, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/products/unknown-id", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/products/unknown-id", token, update)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductListCategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	for _, p := range []models.ProductInput{
		sampleProduct("Brigadeiro", "Doces"),
		sampleProduct("Bolo 20cm", "Bolos Redondos"),
		sampleProduct("Beijinho", "Doces"),
	} {
		rec := env.do(t, http.MethodPost, "/api/products", token, p)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/products?category=Doces", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, "Doces", p.Category)
	}

	rec = env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)
}

func TestProductValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	missingName := sampleProduct("", "Doces")
	rec := env.do(t, http.MethodPost, "/api/products", token, missingName)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	negativePrice := sampleProduct("Bolo", "Doces")
	negativePrice.Price = -1
	rec = env.do(t, http.MethodPost, "/api/products", token, negativePrice)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOrderCheckout(t *testing.T) {
	env := newTestEnv(t)

	// Checkout must not require credentials.
	rec := env.do(t, http.MethodPost, "/api/orders", "", sampleOrder())
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 95.0, order.Total)
	assert.Equal(t, 5.0, order.DeliveryFee)

	// The order list is an admin-only view.
	rec = env.do(t, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	first := env.do(t, http.MethodPost, "/api/orders", "", sampleOrder())
	require.Equal(t, http.StatusOK, first.Code)
	time.Sleep(10 * time.Millisecond)
	second := env.do(t, http.MethodPost, "/api/orders", "", sampleOrder())
	require.Equal(t, http.StatusOK, second.Code)

	var firstOrder, secondOrder models.Order
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstOrder))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondOrder))

	rec := env.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, secondOrder.ID, orders[0].ID)
	assert.Equal(t, firstOrder.ID, orders[1].ID)
}

func TestOrderStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/orders", "", sampleOrder())
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = env.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status?status=Confirmado", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status?status=Confirmado", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Confirmado", orders[0].Status)

	rec = env.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/orders/unknown-id/status?status=Confirmado", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/orders", "", sampleOrder())
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = env.do(t, http.MethodDelete, "/api/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderValidation(t *testing.T) {
	env := newTestEnv(t)

	noItems := sampleOrder()
	noItems["items"] = []map[string]interface{}{}
	rec := env.do(t, http.MethodPost, "/api/orders", "", noItems)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	noContact := sampleOrder()
	noContact["customer_phone"] = ""
	rec = env.do(t, http.MethodPost, "/api/orders", "", noContact)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSettings(t *testing.T) {
	env := newTestEnv(t)

	// An empty store serves (and persists) the defaults.
	rec := env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.StoreSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.Equal(t, 5.0, settings.DeliveryFee)

	rec = env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var again models.StoreSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, settings, again)

	// Updates are gated.
	settings.DeliveryFee = 8.0
	settings.PixKey = "nova@chave.com"
	rec = env.do(t, http.MethodPut, "/api/settings", "", settings)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodPut, "/api/settings", token, settings)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, 8.0, again.DeliveryFee)
	assert.Equal(t, "nova@chave.com", again.PixKey)
}

func TestMalformedBearerToken(t *testing.T) {
	env := newTestEnv(t)

	for _, header := range []string{"Bearer", "Bearer bad.token.here", "Basic abc", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestContentTypeEnforced(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
