// Package articlesvc - service bài viết.
package articlesvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	models "cellic_store/internal/api/article/models"
	basemodels "cellic_store/internal/api/base/models"
	basesvc "cellic_store/internal/api/base/service"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleService là cấu trúc chứa các phương thức liên quan đến bài viết.
// Đường public đi qua datasource store (đổi được backend), đường admin CRUD
// dùng base service MongoDB.
type ArticleService struct {
	*basesvc.BaseServiceMongoImpl[models.Article]
	store datasource.EntityStore[models.Article]
}

// NewArticleService tạo mới ArticleService
func NewArticleService() (*ArticleService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Articles)
	if !exist {
		return nil, fmt.Errorf("failed to get articles collection: %v", common.ErrNotFound)
	}
	return &ArticleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Article](collection),
		store:                datasource.NewStore[models.Article](global.ColNames.Articles, collection),
	}, nil
}

// EnsureUniqueSlug sinh slug duy nhất từ base: thử "slug", "slug-2", "slug-3"...
// excludeID khác Nil sẽ bỏ qua chính bài viết đang cập nhật.
func (s *ArticleService) EnsureUniqueSlug(ctx context.Context, base string, excludeID primitive.ObjectID) (string, error) {
	if base == "" {
		base = "bai-viet"
	}

	slug := base
	for i := 2; ; i++ {
		filter := bson.M{"slug": slug}
		if !excludeID.IsZero() {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// InsertOne tạo bài viết: tự sinh slug duy nhất và gán publishedAt khi publish
func (s *ArticleService) InsertOne(ctx context.Context, article models.Article) (models.Article, error) {
	base := article.Slug
	if base == "" {
		base = utility.GenerateSlug(article.Title)
	}
	slug, err := s.EnsureUniqueSlug(ctx, base, primitive.NilObjectID)
	if err != nil {
		return models.Article{}, err
	}
	article.Slug = slug

	if article.IsPublished && article.PublishedAt == 0 {
		article.PublishedAt = time.Now().UnixMilli()
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, article)
}

// UpdateById cập nhật bài viết, đảm bảo slug mới (nếu có) vẫn duy nhất
func (s *ArticleService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Article, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		if slug, ok := updateData.Set["slug"].(string); ok && slug != "" {
			unique, err := s.EnsureUniqueSlug(ctx, slug, id)
			if err != nil {
				return models.Article{}, err
			}
			updateData.Set["slug"] = unique
		}
		if published, ok := updateData.Set["isPublished"].(bool); ok && published {
			if _, hasPublishedAt := updateData.Set["publishedAt"]; !hasPublishedAt {
				updateData.Set["publishedAt"] = time.Now().UnixMilli()
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// PublicListFilter là bộ filter của danh sách bài viết công khai
type PublicListFilter struct {
	Category   string
	Search     string
	IsFeatured *bool
	Published  *bool
	Page       int64
	Limit      int64
}

// GetPublicArticles trả về danh sách bài viết với filter + phân trang,
// sắp xếp theo publishedAt giảm dần.
func (s *ArticleService) GetPublicArticles(ctx context.Context, f PublicListFilter) (*basemodels.PaginateResult[models.Article], error) {
	logrus.WithFields(logrus.Fields{"category": f.Category, "search": f.Search, "page": f.Page, "limit": f.Limit}).Debug("GetPublicArticles")

	filter := map[string]interface{}{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.IsFeatured != nil {
		filter["isFeatured"] = *f.IsFeatured
	}
	if f.Published != nil {
		filter["isPublished"] = *f.Published
	}

	searchInProcess := f.Search != ""
	if f.Search != "" && datasource.ActiveSource() == datasource.SourceMongoDB {
		// Backend mongo hỗ trợ search phía database
		filter["title"] = map[string]interface{}{"$regex": f.Search, "$options": "i"}
		searchInProcess = false
	}

	all, err := s.store.GetAll(ctx, filter, &datasource.ListOptions{Sort: map[string]int{"publishedAt": -1}})
	if err != nil {
		logrus.WithError(err).Error("GetPublicArticles: Lỗi lấy danh sách bài viết")
		return nil, err
	}

	if searchInProcess {
		matched := make([]models.Article, 0, len(all))
		for _, a := range all {
			if matchesSearch(a, f.Search) {
				matched = append(matched, a)
			}
		}
		all = matched
	}

	return datasource.PaginateSlice(all, f.Page, f.Limit), nil
}

// matchesSearch kiểm tra bài viết khớp từ khóa (tiêu đề hoặc mô tả ngắn)
func matchesSearch(a models.Article, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Excerpt), needle)
}

// GetBySlug trả về bài viết theo slug
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (models.Article, error) {
	articles, err := s.store.GetAll(ctx, map[string]interface{}{"slug": slug}, &datasource.ListOptions{Limit: 1})
	if err != nil {
		return models.Article{}, err
	}
	if len(articles) == 0 {
		return models.Article{}, common.ErrNotFound
	}
	return articles[0], nil
}
