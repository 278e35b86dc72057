// Package settinghdl - handler cấu hình cửa hàng.
package settinghdl

import (
	"fmt"

	basehdl "cellic_store/internal/api/base/handler"
	settingdto "cellic_store/internal/api/setting/dto"
	models "cellic_store/internal/api/setting/models"
	settingsvc "cellic_store/internal/api/setting/service"

	"github.com/gofiber/fiber/v3"
)

// SettingHandler xử lý các request liên quan đến cấu hình
type SettingHandler struct {
	*basehdl.BaseHandler[models.Setting, settingdto.SettingCreateInput, settingdto.SettingUpdateInput]
	settingService *settingsvc.SettingService
}

// NewSettingHandler tạo instance mới của SettingHandler
func NewSettingHandler() (*SettingHandler, error) {
	settingService, err := settingsvc.NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create setting service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Setting, settingdto.SettingCreateInput, settingdto.SettingUpdateInput](settingService)
	return &SettingHandler{
		BaseHandler:    baseHandler,
		settingService: settingService,
	}, nil
}

// HandleListPublic trả về các cấu hình công khai cho storefront
func (h *SettingHandler) HandleListPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		settings, err := h.settingService.GetPublicSettings(c.Context())
		h.HandleResponse(c, settings, err)
		return nil
	})
}

// HandleUpsertByKey tạo mới hoặc cập nhật cấu hình theo key trong body
func (h *SettingHandler) HandleUpsertByKey(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input settingdto.SettingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setting, err := h.settingService.UpsertByKey(c.Context(), models.Setting{
			Key:         input.Key,
			Value:       input.Value,
			Type:        input.Type,
			Description: input.Description,
			Group:       input.Group,
			IsPublic:    input.IsPublic,
		})
		h.HandleResponse(c, setting, err)
		return nil
	})
}
