package authhdl

import (
	"fmt"

	authdto "cellic_store/internal/api/auth/dto"
	authsvc "cellic_store/internal/api/auth/service"
	basehdl "cellic_store/internal/api/base/handler"
	models "cellic_store/internal/api/auth/models"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý quản lý người dùng admin.
// CRUD dùng chung từ BaseHandler; mật khẩu được hash trong UserService
// và không bao giờ xuất hiện trong response (json:"-").
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleMe trả về thông tin phiên đăng nhập hiện tại.
// RequireAuth đã xác thực và đặt username/role vào Locals.
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("role").(string)
	h.HandleResponse(c, fiber.Map{
		"username": username,
		"role":     role,
	}, nil)
	return nil
}
