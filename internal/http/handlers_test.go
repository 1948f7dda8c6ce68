package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/fixtures"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/service"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	snap, err := store.Build(context.Background(), fixtures.NewStatic())
	require.NoError(t, err)
	app := fiber.New()
	Register(app, service.New(snap))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestScreens(t *testing.T) {
	app := setupApp(t)

	code, body := do(t, app, nethttp.MethodGet, "/screens/dashboard", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["critical_tickets"], 2)

	code, body = do(t, app, nethttp.MethodGet, "/screens/sites?q=wind&status=all", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["sites"], 1)

	code, body = do(t, app, nethttp.MethodGet, "/screens/tickets?status=open&priority=critical", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["tickets"], 1)

	code, body = do(t, app, nethttp.MethodGet, "/screens/tickets/new?site_id=site-002", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["prefilled"])

	code, body = do(t, app, nethttp.MethodGet, "/screens/statistics", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "3 / 5", body["active_ratio"])
}

func TestDetailScreens_NotFound(t *testing.T) {
	app := setupApp(t)

	for _, target := range []string{
		"/screens/sites/site-999",
		"/screens/assets/asset-999",
		"/screens/assets/asset-999/maintenance/new",
		"/screens/tickets/ticket-999",
	} {
		code, body := do(t, app, nethttp.MethodGet, target, "")
		assert.Equal(t, fiber.StatusNotFound, code, target)
		assert.Equal(t, false, body["found"], target)
	}

	code, body := do(t, app, nethttp.MethodGet, "/screens/sites/site-001", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["found"])
}

func TestNavigate(t *testing.T) {
	app := setupApp(t)

	code, body := do(t, app, nethttp.MethodPost, "/navigate", `{"destination":"SiteDetails","params":{"siteId":"site-003"}}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "/screens/sites/site-003", body["path"])

	code, body = do(t, app, nethttp.MethodPost, "/navigate", `{"destination":"Statistics"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "/screens/statistics", body["path"])

	code, body = do(t, app, nethttp.MethodPost, "/navigate", `{"destination":"SiteDetails"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["error"], "siteId")

	code, body = do(t, app, nethttp.MethodPost, "/navigate", `{"destination":"Settings"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["error"], "unknown destination")
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	code, body := do(t, app, nethttp.MethodPost, "/login", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "MainTabs", body["destination"])
	assert.Equal(t, true, body["replace"])
	assert.Equal(t, "/screens/dashboard", body["path"])
}
