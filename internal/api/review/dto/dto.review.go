// Package reviewdto - DTO cho domain review.
package reviewdto

// CommentCreateInput đầu vào tạo bình luận (public POST và admin CRUD).
type CommentCreateInput struct {
	ProductID string `json:"productId" validate:"required" transform:"str_objectid"`
	UserID    string `json:"userId" validate:"omitempty" transform:"str_objectid"`
	UserName  string `json:"userName" validate:"omitempty,no_xss"`
	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	Content   string `json:"content" validate:"required,no_xss"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Status    string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// CommentUpdateInput đầu vào cập nhật bình luận (duyệt/từ chối).
type CommentUpdateInput struct {
	Content string `json:"content" validate:"omitempty,no_xss"`
	Rating  int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Status  string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// ReviewCreateInput đầu vào tạo đánh giá sản phẩm.
type ReviewCreateInput struct {
	ProductID    string `json:"productId" validate:"required" transform:"str_objectid"`
	ReviewerName string `json:"reviewerName" validate:"required,no_xss"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review       string `json:"review" validate:"required,no_xss"`
}

// ReviewUpdateInput đầu vào cập nhật đánh giá.
type ReviewUpdateInput struct {
	ReviewerName string `json:"reviewerName" validate:"omitempty,no_xss"`
	Rating       int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Review       string `json:"review" validate:"omitempty,no_xss"`
}
