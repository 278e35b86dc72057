// Package router đăng ký các route thuộc domain setting.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cellic_store/internal/api/middleware"
	apirouter "cellic_store/internal/api/router"
	settinghdl "cellic_store/internal/api/setting/handler"
)

// Register đăng ký tất cả route setting lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	settingHandler, err := settinghdl.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("failed to create setting handler: %w", err)
	}

	// Route công khai: chỉ trả về cấu hình isPublic
	v1.Get("/settings", settingHandler.HandleListPublic)

	// Admin: cấu hình là collection 1 document per key
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/settings", "POST", "/upsert-by-key", adminMiddlewares, settingHandler.HandleUpsertByKey)
	r.RegisterCRUDRoutes(v1, "/admin/settings", settingHandler, apirouter.KeyedConfig, adminMiddlewares)

	return nil
}
