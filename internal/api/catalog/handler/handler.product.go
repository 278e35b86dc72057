// Package cataloghdl - handler sản phẩm và danh mục.
package cataloghdl

import (
	"fmt"
	"strings"

	basehdl "cellic_store/internal/api/base/handler"
	catalogdto "cellic_store/internal/api/catalog/dto"
	models "cellic_store/internal/api/catalog/models"
	catalogsvc "cellic_store/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// HandleListPublic trả về danh sách sản phẩm cho storefront.
//
// Query params: category, search, needs (phân cách bởi dấu phẩy), page, limit
func (h *ProductHandler) HandleListPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := basehdl.ParsePagination(c)

		var needs []string
		if raw := c.Query("needs"); raw != "" {
			for _, n := range strings.Split(raw, ",") {
				if n = strings.TrimSpace(n); n != "" {
					needs = append(needs, n)
				}
			}
		}

		result, err := h.productService.GetPublicProducts(
			c.Context(),
			c.Query("category"),
			c.Query("search"),
			needs,
			page, limit,
		)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDetailPublic trả về chi tiết một sản phẩm theo ID
func (h *ProductHandler) HandleDetailPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		product, err := h.productService.GetProductByID(c.Context(), c.Params("id"))
		h.HandleResponse(c, product, err)
		return nil
	})
}
