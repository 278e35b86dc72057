// Package router đăng ký các route thuộc domain auth: đăng nhập admin và quản lý người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "cellic_store/internal/api/auth/handler"
	"cellic_store/internal/api/middleware"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sessionHandler, err := authhdl.NewSessionHandler()
	if err != nil {
		return fmt.Errorf("failed to create session handler: %w", err)
	}
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// Đăng nhập là route công khai duy nhất của domain này
	v1.Post("/admin/auth/login", sessionHandler.HandleLogin)

	apirouter.RegisterRouteWithMiddleware(v1, "/admin/auth", "GET", "/me", []fiber.Handler{requireAuth}, userHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/auth", "POST", "/logout", []fiber.Handler{requireAuth}, sessionHandler.HandleLogout)

	// Quản lý người dùng: chỉ admin
	r.RegisterCRUDRoutes(v1, "/admin/users", userHandler, apirouter.ReadWriteConfig, []fiber.Handler{requireAuth, requireAdmin})

	return nil
}
