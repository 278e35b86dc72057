// Package models - model danh mục (Category) thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategorySlugAll là khóa ảo "tất cả sản phẩm", không bao giờ được lưu thành record
const CategorySlugAll = "all"

// Category định nghĩa mô hình danh mục sản phẩm
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug,omitempty" bson:"slug,omitempty" index:"unique,sparse"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
