// Package router đăng ký các route thuộc domain catalog: sản phẩm và danh mục.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "cellic_store/internal/api/catalog/handler"
	"cellic_store/internal/api/middleware"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}

	// Route công khai cho storefront
	v1.Get("/products", productHandler.HandleListPublic)
	v1.Get("/products/:id", productHandler.HandleDetailPublic)
	v1.Get("/categories", categoryHandler.HandleListPublic)

	// Admin CRUD
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	r.RegisterCRUDRoutes(v1, "/admin/products", productHandler, apirouter.ReadWriteConfig, adminMiddlewares)
	r.RegisterCRUDRoutes(v1, "/admin/categories", categoryHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	return nil
}
