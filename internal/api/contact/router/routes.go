// Package router đăng ký các route thuộc domain contact.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contacthdl "cellic_store/internal/api/contact/handler"
	"cellic_store/internal/api/middleware"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route contact lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	contactHandler, err := contacthdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("failed to create contact handler: %w", err)
	}

	// Form liên hệ là route công khai
	v1.Post("/contact", contactHandler.HandleSubmit)

	// Admin
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	r.RegisterCRUDRoutes(v1, "/admin/contacts", contactHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	return nil
}
