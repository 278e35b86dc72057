package cataloghdl

import (
	"fmt"

	basehdl "cellic_store/internal/api/base/handler"
	catalogdto "cellic_store/internal/api/catalog/dto"
	models "cellic_store/internal/api/catalog/models"
	catalogsvc "cellic_store/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các request liên quan đến danh mục
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// HandleListPublic trả về toàn bộ danh mục cho storefront
func (h *CategoryHandler) HandleListPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.GetPublicCategories(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if categories == nil {
			categories = []models.Category{}
		}
		h.HandleResponse(c, categories, nil)
		return nil
	})
}
