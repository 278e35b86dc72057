package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// slug: chữ thường, số, gạch ngang; không bắt đầu/kết thúc bằng gạch ngang
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// setting key: chữ thường, số, dấu chấm, gạch dưới, gạch ngang
	settingKeyRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)
)

// Các trạng thái hợp lệ của đơn hàng
var orderStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"shipping":  true,
	"delivered": true,
	"cancelled": true,
}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("slug", validateSlug)
	_ = Validate.RegisterValidation("setting_key", validateSettingKey)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validateSlug kiểm tra định dạng slug (vd: "san-pham-moi")
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // rỗng = auto-generate, để service xử lý
	}
	return slugRegex.MatchString(value)
}

// validateSettingKey kiểm tra định dạng key của cấu hình (vd: "site.hotline")
func validateSettingKey(fl validator.FieldLevel) bool {
	return settingKeyRegex.MatchString(fl.Field().String())
}

// validateOrderStatus kiểm tra trạng thái đơn hàng hợp lệ
func validateOrderStatus(fl validator.FieldLevel) bool {
	return orderStatuses[fl.Field().String()]
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
