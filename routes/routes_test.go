package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopmonitor/condb"
	"shopmonitor/config"
	"shopmonitor/controllers"
	"shopmonitor/middleware"
	"shopmonitor/utils"
	"shopmonitor/views"
)

func newApp(t *testing.T, requireToken bool) (*fiber.App, *condb.Store) {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop()

	db, err := condb.Open(ctx, config.DatabaseConfig{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "shop.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, condb.Migrate(ctx, db, log))

	store := condb.NewStore(db)
	require.NoError(t, condb.SeedAdmin(ctx, store, config.SeedConfig{
		AdminUsername: "admin", AdminPassword: "admin123", AdminRole: "admin",
	}, log))

	engine := views.New()
	require.NoError(t, engine.Load())

	tokens := utils.NewTokenIssuer("test-secret", time.Hour, false)
	app := fiber.New(fiber.Config{Views: engine, ErrorHandler: controllers.ErrorHandler(log)})
	RegisterRoutes(app, controllers.NewHandler(store, tokens, log, "Shop Monitor"), Options{
		RequireToken: requireToken,
		Tokens:       tokens,
		Metrics:      middleware.NewMetrics("shop"),
		MetricsPath:  "/metrics",
	})
	return app, store
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestInventory_PostedItemIsListed(t *testing.T) {
	app, _ := newApp(t, false)

	resp, body := send(t, app, jsonRequest(http.MethodPost, "/api/inventory",
		`{"name":"Tea","category":"Drinks","quantity":4,"price":2.75,"expiration_date":"2027-01-01"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.Positive(t, created.ID)

	resp, body = send(t, app, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 1)
	assert.EqualValues(t, created.ID, items[0]["id"])
	assert.Equal(t, "Drinks", items[0]["category"])
}

func TestInventory_MissingNameIsRejectedByDatabase(t *testing.T) {
	app, _ := newApp(t, false)

	resp, body := send(t, app, jsonRequest(http.MethodPost, "/api/inventory", `{"quantity":1,"price":1}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "NOT NULL")
}

func TestEmptyTablesAreEmptyArrays(t *testing.T) {
	app, _ := newApp(t, false)

	for _, path := range []string{"/api/inventory", "/api/sales", "/api/customers", "/api/employees", "/api/invoices"} {
		resp, body := send(t, app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "[]", body, path)
	}
}

func TestLogin(t *testing.T) {
	app, _ := newApp(t, false)

	resp, body := send(t, app, jsonRequest(http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"role":"admin"`)

	resp, body = send(t, app, jsonRequest(http.MethodPost, "/api/login", `{"username":"nobody","password":"admin123"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Invalid credentials"}`, body)
	assert.Empty(t, resp.Cookies())
}

func TestRequiredToken(t *testing.T) {
	app, _ := newApp(t, true)

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/api/sales", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = send(t, app, jsonRequest(http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.AddCookie(cookies[0])
	resp, body := send(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", body)

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequiredToken_GuardsDashboard(t *testing.T) {
	app, store := newApp(t, true)

	form := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/dashboard/inventory",
			strings.NewReader("name=Sneaky&quantity=3&price=1.5"))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		return req
	}

	resp, _ := send(t, app, form())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	items, err := store.ListInventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/dashboard/inventory", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = send(t, app, jsonRequest(http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	req := form()
	req.AddCookie(cookies[0])
	resp, _ = send(t, app, req)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/inventory", resp.Header.Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/dashboard/inventory", nil)
	req.AddCookie(cookies[0])
	resp, body := send(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sneaky")
}

func TestDashboardOpenWithoutRequiredToken(t *testing.T) {
	app, _ := newApp(t, false)

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/dashboard/inventory", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Inventory")
}

func TestOperationalEndpoints(t *testing.T) {
	app, _ := newApp(t, false)

	resp, body := send(t, app, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
