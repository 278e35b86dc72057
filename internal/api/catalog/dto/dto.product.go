// Package catalogdto - DTO cho domain catalog.
package catalogdto

// ProductCreateInput đầu vào tạo sản phẩm (CRUD).
type ProductCreateInput struct {
	Name          string   `json:"name" validate:"required,no_xss"`
	Tagline       string   `json:"tagline" validate:"omitempty,no_xss"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"omitempty,gte=0"`
	Discount      float64  `json:"discount" validate:"omitempty,gte=0"`
	Category      string   `json:"category" validate:"omitempty,slug"`
	Needs         []string `json:"needs"`
	Image         string   `json:"image"`
	HoverImage    string   `json:"hoverImage"`
	Description   string   `json:"description"`
	Benefits      string   `json:"benefits"`
	Ingredients   string   `json:"ingredients"`
	HowToUse      string   `json:"howToUse"`
	Slug          string   `json:"slug" validate:"omitempty,slug"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm. Trường rỗng giữ nguyên giá trị cũ.
type ProductUpdateInput struct {
	Name          string   `json:"name" validate:"omitempty,no_xss"`
	Tagline       string   `json:"tagline" validate:"omitempty,no_xss"`
	Price         float64  `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"omitempty,gte=0"`
	Discount      float64  `json:"discount" validate:"omitempty,gte=0"`
	Category      string   `json:"category" validate:"omitempty,slug"`
	Needs         []string `json:"needs"`
	Image         string   `json:"image"`
	HoverImage    string   `json:"hoverImage"`
	Description   string   `json:"description"`
	Benefits      string   `json:"benefits"`
	Ingredients   string   `json:"ingredients"`
	HowToUse      string   `json:"howToUse"`
	Slug          string   `json:"slug" validate:"omitempty,slug"`
}
