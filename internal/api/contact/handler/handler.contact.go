// Package contacthdl - handler tin nhắn liên hệ.
package contacthdl

import (
	"fmt"

	basehdl "cellic_store/internal/api/base/handler"
	contactdto "cellic_store/internal/api/contact/dto"
	models "cellic_store/internal/api/contact/models"
	contactsvc "cellic_store/internal/api/contact/service"

	"github.com/gofiber/fiber/v3"
)

// ContactHandler xử lý các request liên quan đến tin nhắn liên hệ
type ContactHandler struct {
	*basehdl.BaseHandler[models.ContactMessage, contactdto.ContactCreateInput, contactdto.ContactUpdateInput]
	contactService *contactsvc.ContactService
}

// NewContactHandler tạo instance mới của ContactHandler
func NewContactHandler() (*ContactHandler, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ContactMessage, contactdto.ContactCreateInput, contactdto.ContactUpdateInput](contactService)
	return &ContactHandler{
		BaseHandler:    baseHandler,
		contactService: contactService,
	}, nil
}

// HandleSubmit nhận tin nhắn từ form liên hệ công khai.
// Email thông báo admin gửi fire-and-forget, không chặn response.
func (h *ContactHandler) HandleSubmit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contactdto.ContactCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		saved, err := h.contactService.SubmitContact(c.Context(), models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
		})
		h.HandleResponse(c, saved, err)
		return nil
	})
}
