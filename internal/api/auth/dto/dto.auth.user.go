package authdto

// LoginInput đầu vào đăng nhập admin.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address" validate:"omitempty,no_xss"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserUpdateInput đầu vào cập nhật người dùng. Các trường rỗng sẽ được giữ nguyên.
type UserUpdateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address" validate:"omitempty,no_xss"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}
