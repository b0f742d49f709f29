package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/repository/state"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}
func (nopLogger) Debugf(format string, args ...any)            {}

type nopSnapshots struct{}

func (nopSnapshots) SaveCatalog(ctx context.Context, products []domain.Product) error     { return nil }
func (nopSnapshots) SaveCategories(ctx context.Context, categories []string) error        { return nil }
func (nopSnapshots) SaveSettings(ctx context.Context, settings domain.ShopSettings) error { return nil }
func (nopSnapshots) SaveOrders(ctx context.Context, orders []domain.Order) error          { return nil }
func (nopSnapshots) SaveCarts(ctx context.Context, carts []domain.Cart) error             { return nil }

type nopImages struct{}

func (nopImages) Upload(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	return "https://img.test/" + req.Image.Name, nil
}
func (nopImages) Delete(ctx context.Context, key string) error { return nil }

type staticAssistant struct{}

func (staticAssistant) GenerateReply(ctx context.Context, req *usecase.AssistantReq) (string, error) {
	return "static reply", nil
}

func newTestMux(t *testing.T) (*chi.Mux, *cfg.ShopCfg) {
	t.Helper()

	shop := &cfg.ShopCfg{
		AdminEmail:       "admin@akshop.com",
		AdminPassword:    "admin123",
		SnapshotPrefix:   "akshop",
		CurrencySymbol:   "৳",
		SessionTokenName: "X-Session-Token",
		CartTokenName:    "X-Cart-Token",
	}

	store := state.NewStore()
	store.SetProducts([]domain.Product{{
		ID:    "p1",
		Name:  "Pro Headphones 700",
		Price: decimal.NewFromInt(38500),
	}})
	store.SetCategories([]string{"All", "Electronics"})
	store.SetSettings(domain.ShopSettings{Email: "support@akshop.com"})

	log := nopLogger{}
	snapshots := nopSnapshots{}

	mux := chi.NewRouter()
	router := NewRouter(mux, shop, log)
	router.Init(UseCases{
		Catalog:  usecase.NewCatalogUC(store, snapshots, nopImages{}, log),
		Cart:     usecase.NewCartUC(store, store, snapshots, log),
		Order:    usecase.NewOrderUC(store, store, store, snapshots, log),
		Session:  usecase.NewSessionUC(store, store, shop, log),
		Settings: usecase.NewSettingsUC(store, snapshots, log),
		Chat:     usecase.NewChatUC(store, staticAssistant{}, shop, log),
	})

	return mux, shop
}

func doJSON(t *testing.T, mux *chi.Mux, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, mux *chi.Mux, name, email, password string) string {
	t.Helper()

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"name": name, "email": email, "password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Token
}

func TestCartTokenIssuedWhenMissing(t *testing.T) {
	mux, shop := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/cart", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(shop.CartTokenName))

	// Переданный токен возвращается как есть
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/cart", nil, map[string]string{shop.CartTokenName: "c1"})
	assert.Equal(t, "c1", rec.Header().Get(shop.CartTokenName))
}

func TestWrongAdminPasswordRejected(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"name": "Admin", "email": "admin@akshop.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGate(t *testing.T) {
	mux, shop := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/admin/summary", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken := login(t, mux, "Alice", "alice@example.com", "")
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/admin/summary", nil, map[string]string{shop.SessionTokenName: userToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, mux, "Admin", "admin@akshop.com", "admin123")
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/admin/summary", nil, map[string]string{shop.SessionTokenName: adminToken})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutFlow(t *testing.T) {
	mux, shop := newTestMux(t)
	token := login(t, mux, "Alice", "alice@example.com", "")

	headers := map[string]string{shop.SessionTokenName: token, shop.CartTokenName: "c1"}

	// Пустая корзина отклоняется
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/checkout", nil, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/checkout", nil, headers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "Pending", order.Status)

	// Корзина очищена, заказ виден покупателю
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/cart", nil, headers)
	var cart struct {
		Items []any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	rec = doJSON(t, mux, http.MethodGet, "/api/v1/orders", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestCheckoutRequiresSession(t *testing.T) {
	mux, shop := newTestMux(t)

	headers := map[string]string{shop.CartTokenName: "c1"}
	rec := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/checkout", nil, headers)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatEndpoints(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/chat/greeting", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/chat", map[string]any{
		"conversationId": "conv1",
		"messages":       []map[string]string{{"role": "user", "text": "hi"}},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "static reply")

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/chat", map[string]any{"messages": []any{}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
