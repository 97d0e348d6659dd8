package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/infrastructure/database"
	"storefront/internal/order"
	"storefront/internal/product"
	"storefront/internal/testutil"
)

type testApp struct {
	handler http.Handler
	auth    *auth.Module
	tokens  *auth.Tokens
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	authCfg := config.AuthConfig{JWTSecret: "router-secret", JWTExpiry: time.Hour}
	authModule := auth.NewModule(db, database.SQLite, authCfg, logger)

	handler := NewRouter(Handlers{
		Auth:     authModule,
		Products: product.NewModule(db, database.SQLite, logger),
		Orders:   order.NewModule(db, database.SQLite, nil, logger),
	}, []string{"https://shop.example.com"}, logger)

	return &testApp{
		handler: handler,
		auth:    authModule,
		tokens:  auth.NewTokens(authCfg.JWTSecret, authCfg.JWTExpiry),
	}
}

func (a *testApp) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) token(t *testing.T, role string) string {
	t.Helper()

	raw, err := a.tokens.Issue(domain.User{ID: 1, Email: role + "@example.com", Role: role})
	require.NoError(t, err)
	return raw
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	for _, path := range []string{"/health", "/api/health"} {
		rec = app.do(t, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body healthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.OK)
		assert.Equal(t, "storefront", body.Service)
	}

	rec = app.do(t, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRouter_OrderEndpointsRequireAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Missing authorization token"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/orders", "", "forged.token.value")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/orders", "", app.token(t, domain.RoleStaff))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_PlaceOrderIsPublic(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/orders",
		`{"subtotal":20,"total":20,"items":[{"title":"Sticker","price":10,"qty":2}]}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created["id"])

	rec = app.do(t, http.MethodGet, "/api/orders/"+created["id"], "", app.token(t, domain.RoleStaff))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProductWritesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	body := `{"title":"Poster","price":12,"stock":5}`

	rec := app.do(t, http.MethodPost, "/api/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/products", body, app.token(t, domain.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/products", body, app.token(t, domain.RoleAdmin))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	assert.Len(t, products, 1)
}

func TestRouter_Login(t *testing.T) {
	app := newTestApp(t)
	_, err := app.auth.Service.EnsureAdmin(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)

	rec := app.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"hunter22"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	rec = app.do(t, http.MethodDelete, "/api/products/999", "", body["token"])
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	app := newTestApp(t)

	big := `{"subtotal":1,"total":1,"customer_name":"` + strings.Repeat("a", 2<<20) + `","items":[{"title":"A","price":1,"qty":1}]}`
	rec := app.do(t, http.MethodPost, "/api/orders", big, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
