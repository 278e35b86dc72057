// Package router đăng ký các route thuộc domain review: bình luận và đánh giá.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cellic_store/internal/api/middleware"
	reviewhdl "cellic_store/internal/api/review/handler"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route review lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	commentHandler, err := reviewhdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}
	reviewHandler, err := reviewhdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("failed to create review handler: %w", err)
	}

	// Route công khai: gửi bình luận/đánh giá và xem theo sản phẩm
	v1.Post("/comments", commentHandler.InsertOne)
	v1.Get("/comments/product/:productId", commentHandler.HandleListByProduct)
	v1.Post("/reviews", reviewHandler.InsertOne)
	v1.Get("/reviews/product/:productId", reviewHandler.HandleListByProduct)

	// Admin moderation
	adminMiddlewares := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	r.RegisterCRUDRoutes(v1, "/admin/comments", commentHandler, apirouter.ReadWriteConfig, adminMiddlewares)
	r.RegisterCRUDRoutes(v1, "/admin/reviews", reviewHandler, apirouter.ReadWriteConfig, adminMiddlewares)

	return nil
}
