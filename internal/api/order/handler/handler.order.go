// Package orderhdl - handler đơn hàng và checkout.
package orderhdl

import (
	"fmt"

	basehdl "cellic_store/internal/api/base/handler"
	orderdto "cellic_store/internal/api/order/dto"
	models "cellic_store/internal/api/order/models"
	ordersvc "cellic_store/internal/api/order/service"
	"cellic_store/internal/common"
	"cellic_store/internal/logger"
	"cellic_store/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// HandleCheckout lưu đơn hàng từ storefront (POST /orders/save-to-db).
// Lỗi lưu database không chặn checkout: response vẫn success kèm warning.
func (h *OrderHandler) HandleCheckout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.CheckoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.orderService.SaveCheckout(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDetail trả về đơn hàng kèm thông tin người dùng và items đã parse
func (h *OrderHandler) HandleDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		detail, err := h.orderService.GetOrderDetail(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, detail, err)
		return nil
	})
}

// HandleUpdateStatus cập nhật trạng thái đơn hàng (admin)
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input orderdto.OrderStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.UpdateStatus(c.Context(), utility.String2ObjectID(id), input.Status)
		if err == nil {
			logger.LogCRUD("update", "order", id, c, map[string]interface{}{"status": input.Status})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}
