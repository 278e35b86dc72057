// Package models - model sản phẩm (Product) thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product định nghĩa mô hình sản phẩm skincare.
// Category là slug của danh mục (foreign-key-by-convention, không enforce).
// IsDeleted/DeletedAt tồn tại từ migration cũ, các đường đọc hiện không filter theo chúng.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Tagline       string             `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	OriginalPrice float64            `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Discount      float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty"`
	Needs         []string           `json:"needs,omitempty" bson:"needs,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	HoverImage    string             `json:"hoverImage,omitempty" bson:"hoverImage,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Benefits      string             `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Ingredients   string             `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	HowToUse      string             `json:"howToUse,omitempty" bson:"howToUse,omitempty"`
	Slug          string             `json:"slug,omitempty" bson:"slug,omitempty" index:"unique,sparse"`
	IsDeleted     bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	DeletedAt     int64              `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
