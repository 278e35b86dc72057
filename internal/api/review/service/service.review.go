// Package reviewsvc - service bình luận và đánh giá sản phẩm.
package reviewsvc

import (
	"context"
	"fmt"

	basesvc "cellic_store/internal/api/base/service"
	models "cellic_store/internal/api/review/models"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	store datasource.EntityStore[models.Comment]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](collection),
		store:                datasource.NewStore[models.Comment](global.ColNames.Comments, collection),
	}, nil
}

// InsertOne tạo bình luận qua datasource store, mặc định trạng thái chờ duyệt
func (s *CommentService) InsertOne(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if comment.Status == "" {
		comment.Status = models.CommentStatusPending
	}
	return s.store.Create(ctx, comment)
}

// GetByProduct trả về các bình luận đã duyệt của một sản phẩm, mới nhất trước
func (s *CommentService) GetByProduct(ctx context.Context, productID string) ([]models.Comment, error) {
	logrus.WithFields(logrus.Fields{"product_id": productID}).Debug("CommentService.GetByProduct")

	// Backend mongo lưu productId dạng ObjectID, backend khác lưu string
	var productRef interface{} = productID
	if datasource.ActiveSource() == datasource.SourceMongoDB {
		productRef = utility.String2ObjectID(productID)
	}

	comments, err := s.store.GetAll(ctx,
		map[string]interface{}{"productId": productRef, "status": models.CommentStatusApproved},
		&datasource.ListOptions{Sort: map[string]int{"createdAt": -1}},
	)
	if err != nil {
		logrus.WithError(err).Error("CommentService.GetByProduct: Lỗi lấy bình luận")
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// ReviewService là cấu trúc chứa các phương thức liên quan đến đánh giá
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	store datasource.EntityStore[models.Review]
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}
	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](collection),
		store:                datasource.NewStore[models.Review](global.ColNames.Reviews, collection),
	}, nil
}

// InsertOne tạo đánh giá qua datasource store
func (s *ReviewService) InsertOne(ctx context.Context, review models.Review) (models.Review, error) {
	return s.store.Create(ctx, review)
}

// GetByProduct trả về toàn bộ đánh giá của một sản phẩm, mới nhất trước
func (s *ReviewService) GetByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	logrus.WithFields(logrus.Fields{"product_id": productID}).Debug("ReviewService.GetByProduct")

	// Backend mongo lưu productId dạng ObjectID, backend khác lưu string
	var productRef interface{} = productID
	if datasource.ActiveSource() == datasource.SourceMongoDB {
		productRef = utility.String2ObjectID(productID)
	}

	reviews, err := s.store.GetAll(ctx,
		map[string]interface{}{"productId": productRef},
		&datasource.ListOptions{Sort: map[string]int{"createdAt": -1}},
	)
	if err != nil {
		logrus.WithError(err).Error("ReviewService.GetByProduct: Lỗi lấy đánh giá")
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
