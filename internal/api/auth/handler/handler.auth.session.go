// Package authhdl - handler xác thực admin bằng session cookie.
package authhdl

import (
	"time"

	authdto "cellic_store/internal/api/auth/dto"
	authsvc "cellic_store/internal/api/auth/service"
	basehdl "cellic_store/internal/api/base/handler"
	"cellic_store/internal/common"
	"cellic_store/internal/global"
	"cellic_store/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// SessionHandler xử lý đăng nhập / đăng xuất admin
type SessionHandler struct {
	userHandler *UserHandler
}

// NewSessionHandler tạo instance mới của SessionHandler
func NewSessionHandler() (*SessionHandler, error) {
	userHandler, err := NewUserHandler()
	if err != nil {
		return nil, err
	}
	return &SessionHandler{userHandler: userHandler}, nil
}

// sessionCookie dựng cookie phiên admin với các cờ bảo mật cố định
func sessionCookie(token string, expires time.Time) *fiber.Cookie {
	secure := false
	if global.ServerConfig != nil {
		secure = global.ServerConfig.CookieSecure
	}
	return &fiber.Cookie{
		Name:     authsvc.SessionCookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

// HandleLogin xác thực thông tin đăng nhập và phát hành session cookie 2 giờ
func (h *SessionHandler) HandleLogin(c fiber.Ctx) error {
	return h.userHandler.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.userHandler.ParseRequestBody(c, &input); err != nil {
			h.userHandler.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.userHandler.ValidateInput(&input); err != nil {
			h.userHandler.HandleResponse(c, nil, err)
			return nil
		}

		role, err := h.userHandler.userService.Authenticate(c.Context(), input.Username, input.Password)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"username": input.Username})
			h.userHandler.HandleResponse(c, nil, err)
			return nil
		}

		expiresAt := time.Now().Add(authsvc.SessionDuration)
		token := authsvc.EncodeSessionToken(input.Username, expiresAt.UnixMilli())
		c.Cookie(sessionCookie(token, expiresAt))

		logger.LogAuth("login_success", c, map[string]interface{}{"username": input.Username, "role": role})
		h.userHandler.HandleResponse(c, fiber.Map{
			"username":  input.Username,
			"role":      role,
			"expiresAt": expiresAt.UnixMilli(),
		}, nil)
		return nil
	})
}

// HandleLogout xóa session cookie của phiên hiện tại
func (h *SessionHandler) HandleLogout(c fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	c.Cookie(sessionCookie("", time.Now().Add(-time.Hour)))
	logger.LogAuth("logout", c, map[string]interface{}{"username": username})
	return basehdl.SuccessResponse(c, fiber.Map{"message": common.MsgLogoutSuccess})
}
