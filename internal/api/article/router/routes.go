// Package router đăng ký các route thuộc domain article: bài viết và ảnh bài viết.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	articlehdl "cellic_store/internal/api/article/handler"
	"cellic_store/internal/api/middleware"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route article lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	articleHandler, err := articlehdl.NewArticleHandler()
	if err != nil {
		return fmt.Errorf("failed to create article handler: %w", err)
	}

	// Route công khai cho storefront
	v1.Get("/articles", articleHandler.HandleListPublic)
	v1.Get("/articles/slug/:slug", articleHandler.HandleDetailBySlug)

	// Admin: CRUD + quản lý ảnh
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/articles", "POST", "/upload", adminMiddlewares, articleHandler.HandleUploadImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/articles", "POST", "/delete-image", adminMiddlewares, articleHandler.HandleDeleteImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/articles", "POST", "/cleanup-images", adminMiddlewares, articleHandler.HandleCleanupImages)
	r.RegisterCRUDRoutes(v1, "/admin/articles", articleHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	return nil
}
