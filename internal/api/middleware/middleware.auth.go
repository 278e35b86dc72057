// Package middleware chứa các guard xác thực cho route admin.
package middleware

import (
	"errors"

	models "cellic_store/internal/api/auth/models"
	authsvc "cellic_store/internal/api/auth/service"
	basehdl "cellic_store/internal/api/base/handler"
	"cellic_store/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// RequireAuth yêu cầu session cookie admin hợp lệ và chưa hết hạn.
// Khi hợp lệ, lưu username và role vào Locals cho handler phía sau.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(authsvc.SessionCookieName)
		if token == "" {
			return basehdl.ErrorResponse(c, common.ErrSessionMissing)
		}

		claims := authsvc.DecodeSessionToken(token)
		if claims == nil {
			return basehdl.ErrorResponse(c, common.ErrSessionInvalid)
		}
		if authsvc.IsSessionExpired(claims.ExpiresAt) {
			return basehdl.ErrorResponse(c, common.ErrSessionExpired)
		}

		userService, err := authsvc.NewUserService()
		if err != nil {
			return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeInternalServer, "Lỗi khởi tạo user service", common.StatusInternalServerError, err))
		}

		role, err := userService.ResolveRole(c.Context(), claims.Username)
		if err != nil {
			// Phiên trỏ đến user không còn tồn tại thì coi như phiên không hợp lệ
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.ErrorResponse(c, common.ErrSessionInvalid)
			}
			logrus.WithError(err).Error("RequireAuth: Lỗi resolve role")
			return basehdl.ErrorResponse(c, err)
		}

		c.Locals("username", claims.Username)
		c.Locals("role", role)
		return c.Next()
	}
}

// RequireAdmin yêu cầu role admin. Phải đứng sau RequireAuth trong middleware chain.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin {
			return basehdl.ErrorResponse(c, common.ErrForbidden)
		}
		return c.Next()
	}
}
