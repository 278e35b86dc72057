// Package reviewhdl - handler bình luận và đánh giá sản phẩm.
package reviewhdl

import (
	"fmt"

	basehdl "cellic_store/internal/api/base/handler"
	reviewdto "cellic_store/internal/api/review/dto"
	models "cellic_store/internal/api/review/models"
	reviewsvc "cellic_store/internal/api/review/service"
	"cellic_store/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler xử lý các request liên quan đến bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, reviewdto.CommentCreateInput, reviewdto.CommentUpdateInput]
	commentService *reviewsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := reviewsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Comment, reviewdto.CommentCreateInput, reviewdto.CommentUpdateInput](commentService)
	return &CommentHandler{
		BaseHandler:    baseHandler,
		commentService: commentService,
	}, nil
}

// HandleListByProduct trả về bình luận đã duyệt của một sản phẩm (public)
func (h *CommentHandler) HandleListByProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("productId")
		if !primitive.IsValidObjectID(productID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", productID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		comments, err := h.commentService.GetByProduct(c.Context(), productID)
		h.HandleResponse(c, comments, err)
		return nil
	})
}

// ReviewHandler xử lý các request liên quan đến đánh giá
type ReviewHandler struct {
	*basehdl.BaseHandler[models.Review, reviewdto.ReviewCreateInput, reviewdto.ReviewUpdateInput]
	reviewService *reviewsvc.ReviewService
}

// NewReviewHandler tạo instance mới của ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Review, reviewdto.ReviewCreateInput, reviewdto.ReviewUpdateInput](reviewService)
	return &ReviewHandler{
		BaseHandler:   baseHandler,
		reviewService: reviewService,
	}, nil
}

// HandleListByProduct trả về toàn bộ đánh giá của một sản phẩm (public)
func (h *ReviewHandler) HandleListByProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("productId")
		if !primitive.IsValidObjectID(productID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", productID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		reviews, err := h.reviewService.GetByProduct(c.Context(), productID)
		h.HandleResponse(c, reviews, err)
		return nil
	})
}
