// Package models - model tin nhắn liên hệ (ContactMessage) thuộc domain contact.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị hợp lệ của ContactMessage.Status (không enforce transition)
const (
	ContactStatusUnread   = "unread"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactMessage định nghĩa mô hình tin nhắn từ form liên hệ
type ContactMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Subject    string             `json:"subject" bson:"subject"`
	Message    string             `json:"message" bson:"message"`
	Status     string             `json:"status" bson:"status"`
	AdminNotes string             `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	RepliedAt  int64              `json:"repliedAt,omitempty" bson:"repliedAt,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
