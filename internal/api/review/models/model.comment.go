// Package models - model bình luận (Comment) thuộc domain review.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị hợp lệ của Comment.Status
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// Comment định nghĩa mô hình bình luận có chấm điểm của khách hàng.
// ProductId tham chiếu theo convention, không enforce foreign key.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	UserID    primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail string             `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Rating    int                `json:"rating" bson:"rating"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
