// Package models - model bài viết (Article) thuộc domain article.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các danh mục bài viết thường dùng. Category chấp nhận cả free string
// nên đây chỉ là giá trị gợi ý, không phải enum cứng.
const (
	ArticleCategoryKienThucDep   = "kien-thuc-dep"
	ArticleCategoryHoatDongCellic = "hoat-dong-cellic"
	ArticleCategoryOther         = "other"
)

// Article định nghĩa mô hình bài viết.
// Slug là duy nhất, tự sinh từ Title khi không truyền lên.
// IsDeleted/DeletedAt tồn tại từ migration cũ, các đường đọc hiện không filter theo chúng.
type Article struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Slug          string             `json:"slug" bson:"slug" index:"unique,sparse"`
	Excerpt       string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	FeaturedImage string             `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty"`
	IsFeatured    bool               `json:"isFeatured" bson:"isFeatured"`
	Author        string             `json:"author,omitempty" bson:"author,omitempty"`
	PublishedAt   int64              `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	IsPublished   bool               `json:"isPublished" bson:"isPublished"`
	Content       string             `json:"content" bson:"content"`
	CreatedBy     string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy     string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	IsDeleted     bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	DeletedAt     int64              `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
