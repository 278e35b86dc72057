// Package middleware - Test guard 401/403 cho route admin.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authsvc "cellic_store/internal/api/auth/service"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(middlewares ...fiber.Handler) *fiber.App {
	app := fiber.New()
	group := app.Group("/admin")
	for _, mw := range middlewares {
		group.Use(mw)
	}
	group.Get("/ping", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuth_KhongCoCookie(t *testing.T) {
	app := newGuardedApp(RequireAuth())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "không có cookie phải trả 401")
}

func TestRequireAuth_TokenRac(t *testing.T) {
	app := newGuardedApp(RequireAuth())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: authsvc.SessionCookieName, Value: "token-rac-khong-phai-base64!!!"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token không decode được phải trả 401")
}

func TestRequireAuth_PhienHetHan(t *testing.T) {
	app := newGuardedApp(RequireAuth())

	expired := authsvc.EncodeSessionToken("admin", time.Now().Add(-time.Minute).UnixMilli())
	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: authsvc.SessionCookieName, Value: expired})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "phiên hết hạn phải trả 401")
}

// setRole giả lập RequireAuth đã chạy và gán role vào Locals
func setRole(role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals("role", role)
		return c.Next()
	}
}

func TestRequireAdmin_RoleUser(t *testing.T) {
	app := newGuardedApp(setRole("user"), RequireAdmin())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "role user phải bị chặn 403")
}

func TestRequireAdmin_RoleAdmin(t *testing.T) {
	app := newGuardedApp(setRole("admin"), RequireAdmin())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "role admin phải đi qua guard")
}

func TestRequireAdmin_ThieuRole(t *testing.T) {
	app := newGuardedApp(RequireAdmin())

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "không có role trong Locals phải bị chặn 403")
}
