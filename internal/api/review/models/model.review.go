// Package models - model đánh giá (Review) thuộc domain review.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review định nghĩa mô hình đánh giá sản phẩm (không cần tài khoản)
type Review struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID    primitive.ObjectID `json:"productId" bson:"productId"`
	ReviewerName string             `json:"reviewerName" bson:"reviewerName"`
	Rating       int                `json:"rating" bson:"rating"`
	Review       string             `json:"review" bson:"review"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
