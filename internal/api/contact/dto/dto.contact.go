// Package contactdto - DTO cho domain contact.
package contactdto

// ContactCreateInput đầu vào gửi form liên hệ (public POST và admin CRUD).
type ContactCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,no_xss"`
	Message string `json:"message" validate:"required,no_xss"`
}

// ContactUpdateInput đầu vào cập nhật tin nhắn liên hệ (admin).
type ContactUpdateInput struct {
	Status     string `json:"status" validate:"omitempty,oneof=unread read replied archived"`
	AdminNotes string `json:"adminNotes" validate:"omitempty,no_xss"`
	RepliedAt  int64  `json:"repliedAt"`
}
