package catalogdto

// CategoryCreateInput đầu vào tạo danh mục.
// Slug rỗng sẽ được tự sinh từ Name; "all" là khóa ảo, bị từ chối ở service.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
	Description string `json:"description"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục.
type CategoryUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
	Description string `json:"description"`
}
