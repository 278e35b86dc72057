// Package articlehdl - handler bài viết.
package articlehdl

import (
	"fmt"
	"io"
	"strconv"

	articledto "cellic_store/internal/api/article/dto"
	models "cellic_store/internal/api/article/models"
	articlesvc "cellic_store/internal/api/article/service"
	basehdl "cellic_store/internal/api/base/handler"
	"cellic_store/internal/common"
	"cellic_store/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ArticleHandler xử lý các request liên quan đến bài viết
type ArticleHandler struct {
	*basehdl.BaseHandler[models.Article, articledto.ArticleCreateInput, articledto.ArticleUpdateInput]
	articleService *articlesvc.ArticleService
}

// NewArticleHandler tạo instance mới của ArticleHandler
func NewArticleHandler() (*ArticleHandler, error) {
	articleService, err := articlesvc.NewArticleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create article service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Article, articledto.ArticleCreateInput, articledto.ArticleUpdateInput](articleService)
	return &ArticleHandler{
		BaseHandler:    baseHandler,
		articleService: articleService,
	}, nil
}

// parseBoolQuery đọc query bool tùy chọn, nil khi không truyền
func parseBoolQuery(c fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

// HandleListPublic trả về danh sách bài viết cho storefront.
//
// Query params: page, limit, category, search, isFeatured, published
func (h *ArticleHandler) HandleListPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := basehdl.ParsePagination(c)

		result, err := h.articleService.GetPublicArticles(c.Context(), articlesvc.PublicListFilter{
			Category:   c.Query("category"),
			Search:     c.Query("search"),
			IsFeatured: parseBoolQuery(c, "isFeatured"),
			Published:  parseBoolQuery(c, "published"),
			Page:       page,
			Limit:      limit,
		})
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDetailBySlug trả về chi tiết bài viết theo slug
func (h *ArticleHandler) HandleDetailBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Slug không được để trống", common.StatusBadRequest, nil))
			return nil
		}

		article, err := h.articleService.GetBySlug(c.Context(), slug)
		h.HandleResponse(c, article, err)
		return nil
	})
}

// HandleUploadImage upload ảnh bài viết (multipart, field "image")
func (h *ArticleHandler) HandleUploadImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file ảnh trong request (field 'image')", common.StatusBadRequest, err))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Lỗi đọc file upload", common.StatusInternalServerError, err))
			return nil
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Lỗi đọc file upload", common.StatusInternalServerError, err))
			return nil
		}

		url, err := h.articleService.SaveImage(fileHeader.Filename, data)
		if err == nil {
			logger.LogCRUD("upload", "article_image", url, c, nil)
		}
		h.HandleResponse(c, fiber.Map{"url": url}, err)
		return nil
	})
}

// HandleDeleteImage xóa ảnh bài viết theo URL tương đối
func (h *ArticleHandler) HandleDeleteImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input articledto.DeleteImageInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.articleService.DeleteImage(input.URL)
		if err == nil {
			logger.LogCRUD("delete", "article_image", input.URL, c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleCleanupImages xóa ảnh không còn bài viết nào tham chiếu
func (h *ArticleHandler) HandleCleanupImages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		removed, err := h.articleService.CleanupImages(c.Context())
		if err == nil {
			logger.LogCRUD("cleanup", "article_image", "", c, map[string]interface{}{"removed": removed})
		}
		h.HandleResponse(c, fiber.Map{"removed": removed}, err)
		return nil
	})
}
