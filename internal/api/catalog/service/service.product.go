// Package catalogsvc - service sản phẩm và danh mục.
package catalogsvc

import (
	"context"
	"fmt"
	"strings"

	basemodels "cellic_store/internal/api/base/models"
	basesvc "cellic_store/internal/api/base/service"
	models "cellic_store/internal/api/catalog/models"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm.
// Đường public đi qua datasource store (đổi được backend), đường admin CRUD
// dùng base service MongoDB.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	store datasource.EntityStore[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
		store:                datasource.NewStore[models.Product](global.ColNames.Products, collection),
	}, nil
}

// InsertOne tạo sản phẩm, tự sinh slug từ tên khi slug rỗng
func (s *ProductService) InsertOne(ctx context.Context, product models.Product) (models.Product, error) {
	if product.Slug == "" && product.Name != "" {
		product.Slug = utility.GenerateSlug(product.Name)
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, product)
}

// GetPublicProducts trả về danh sách sản phẩm cho storefront với filter
// category/search/needs và phân trang.
func (s *ProductService) GetPublicProducts(ctx context.Context, category, search string, needs []string, page, limit int64) (*basemodels.PaginateResult[models.Product], error) {
	logrus.WithFields(logrus.Fields{"category": category, "search": search, "needs": needs, "page": page, "limit": limit}).Debug("GetPublicProducts")

	filter := map[string]interface{}{}
	// "all" là khóa ảo: không filter theo danh mục
	if category != "" && category != models.CategorySlugAll {
		filter["category"] = category
	}

	if datasource.ActiveSource() == datasource.SourceMongoDB {
		// Backend mongo hỗ trợ filter phía database
		if search != "" {
			filter["name"] = map[string]interface{}{"$regex": search, "$options": "i"}
		}
		if len(needs) > 0 {
			filter["needs"] = map[string]interface{}{"$in": needs}
		}
		return s.store.List(ctx, filter, page, limit)
	}

	// Backend khác chỉ hỗ trợ equality filter, search/needs lọc in-process
	all, err := s.store.GetAll(ctx, filter, nil)
	if err != nil {
		logrus.WithError(err).Error("GetPublicProducts: Lỗi lấy danh sách sản phẩm")
		return nil, err
	}

	matched := make([]models.Product, 0, len(all))
	for _, p := range all {
		if search != "" && !containsFold(p.Name, search) {
			continue
		}
		if len(needs) > 0 && !hasAnyNeed(p.Needs, needs) {
			continue
		}
		matched = append(matched, p)
	}

	return datasource.PaginateSlice(matched, page, limit), nil
}

// GetProductByID trả về sản phẩm theo ID qua datasource store
func (s *ProductService) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	logrus.WithFields(logrus.Fields{"id": id}).Debug("GetProductByID")
	return s.store.GetByID(ctx, id)
}

// hasAnyNeed kiểm tra sản phẩm khớp ít nhất một nhu cầu được filter
func hasAnyNeed(productNeeds, wanted []string) bool {
	for _, w := range wanted {
		for _, n := range productNeeds {
			if n == w {
				return true
			}
		}
	}
	return false
}

// containsFold kiểm tra substring không phân biệt hoa thường
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
