// Package router đăng ký các route thuộc domain order: checkout và quản trị đơn hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cellic_store/internal/api/middleware"
	orderhdl "cellic_store/internal/api/order/handler"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	// Checkout là route công khai
	v1.Post("/orders/save-to-db", orderHandler.HandleCheckout)

	// Admin
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "GET", "/detail/:id", adminMiddlewares, orderHandler.HandleDetail)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "PUT", "/status/:id", adminMiddlewares, orderHandler.HandleUpdateStatus)
	r.RegisterCRUDRoutes(v1, "/admin/orders", orderHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	return nil
}
