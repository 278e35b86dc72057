package catalogsvc

import (
	"context"
	"fmt"

	basesvc "cellic_store/internal/api/base/service"
	models "cellic_store/internal/api/catalog/models"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	store datasource.EntityStore[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](collection),
		store:                datasource.NewStore[models.Category](global.ColNames.Categories, collection),
	}, nil
}

// validateReservedSlug chặn slug "all" - khóa ảo của storefront, không được lưu
func validateReservedSlug(slug string) error {
	if slug == models.CategorySlugAll {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Slug '%s' là khóa dành riêng, không thể dùng cho danh mục", models.CategorySlugAll),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// InsertOne tạo danh mục, tự sinh slug từ tên khi slug rỗng
func (s *CategoryService) InsertOne(ctx context.Context, category models.Category) (models.Category, error) {
	if category.Slug == "" && category.Name != "" {
		category.Slug = utility.GenerateSlug(category.Name)
	}
	if err := validateReservedSlug(category.Slug); err != nil {
		return models.Category{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, category)
}

// UpdateById cập nhật danh mục, chặn đổi slug thành khóa dành riêng
func (s *CategoryService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Category, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		if slug, ok := updateData.Set["slug"].(string); ok {
			if err := validateReservedSlug(slug); err != nil {
				return models.Category{}, err
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// GetPublicCategories trả về toàn bộ danh mục cho storefront,
// sắp xếp theo thứ tự tạo để giữ ổn định hiển thị.
func (s *CategoryService) GetPublicCategories(ctx context.Context) ([]models.Category, error) {
	logrus.Debug("GetPublicCategories")
	return s.store.GetAll(ctx, nil, &datasource.ListOptions{
		Sort: map[string]int{"createdAt": 1},
	})
}
