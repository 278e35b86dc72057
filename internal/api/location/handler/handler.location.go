// Package locationhdl - handler tra cứu địa giới hành chính.
package locationhdl

import (
	basehdl "cellic_store/internal/api/base/handler"
	locationsvc "cellic_store/internal/api/location/service"
	"cellic_store/internal/common"

	"github.com/gofiber/fiber/v3"
)

// LocationHandler xử lý các request tra cứu tỉnh/huyện/xã
type LocationHandler struct {
	locationService *locationsvc.LocationService
}

// NewLocationHandler tạo instance mới của LocationHandler
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{
		locationService: locationsvc.NewLocationService(),
	}
}

// respond trả kết quả proxy theo envelope chung
func (h *LocationHandler) respond(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, data)
}

// HandleProvinces trả về danh sách tỉnh/thành phố
func (h *LocationHandler) HandleProvinces(c fiber.Ctx) error {
	data, err := h.locationService.GetProvinces(c.Context())
	return h.respond(c, data, err)
}

// HandleDistricts trả về danh sách quận/huyện theo mã tỉnh
func (h *LocationHandler) HandleDistricts(c fiber.Ctx) error {
	code := c.Params("provinceCode")
	if code == "" {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu mã tỉnh/thành phố", common.StatusBadRequest, nil))
	}
	data, err := h.locationService.GetDistricts(c.Context(), code)
	return h.respond(c, data, err)
}

// HandleWards trả về danh sách phường/xã theo mã quận/huyện
func (h *LocationHandler) HandleWards(c fiber.Ctx) error {
	code := c.Params("districtCode")
	if code == "" {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu mã quận/huyện", common.StatusBadRequest, nil))
	}
	data, err := h.locationService.GetWards(c.Context(), code)
	return h.respond(c, data, err)
}
