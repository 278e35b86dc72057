// Package articledto - DTO cho domain article.
package articledto

// ArticleCreateInput đầu vào tạo bài viết.
// Slug rỗng sẽ được tự sinh từ Title và đảm bảo duy nhất ở service.
type ArticleCreateInput struct {
	Title         string `json:"title" validate:"required,no_xss"`
	Slug          string `json:"slug" validate:"omitempty,slug"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featuredImage"`
	Category      string `json:"category"`
	IsFeatured    bool   `json:"isFeatured"`
	Author        string `json:"author" validate:"omitempty,no_xss"`
	PublishedAt   int64  `json:"publishedAt"`
	IsPublished   bool   `json:"isPublished"`
	Content       string `json:"content" validate:"required"`
	CreatedBy     string `json:"createdBy"`
}

// ArticleUpdateInput đầu vào cập nhật bài viết.
type ArticleUpdateInput struct {
	Title         string `json:"title" validate:"omitempty,no_xss"`
	Slug          string `json:"slug" validate:"omitempty,slug"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featuredImage"`
	Category      string `json:"category"`
	IsFeatured    bool   `json:"isFeatured"`
	Author        string `json:"author" validate:"omitempty,no_xss"`
	PublishedAt   int64  `json:"publishedAt"`
	IsPublished   bool   `json:"isPublished"`
	Content       string `json:"content"`
	UpdatedBy     string `json:"updatedBy"`
}

// DeleteImageInput đầu vào xóa ảnh bài viết theo URL tương đối.
type DeleteImageInput struct {
	URL string `json:"url" validate:"required"`
}
