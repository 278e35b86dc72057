// Package authsvc - xác thực admin bằng session cookie.
package authsvc

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// SessionCookieName là tên cookie chứa session token của admin
const SessionCookieName = "admin_session"

// SessionDuration là thời gian sống của một phiên admin
const SessionDuration = 2 * time.Hour

// SessionClaims chứa thông tin giải mã từ session token
type SessionClaims struct {
	Username  string // Tài khoản đăng nhập
	ExpiresAt int64  // Thời điểm hết hạn (Unix milliseconds)
}

// EncodeSessionToken tạo session token dạng base64("<username>:<expiresAt>").
// expiresAt tính bằng Unix milliseconds.
func EncodeSessionToken(username string, expiresAt int64) string {
	raw := username + ":" + strconv.FormatInt(expiresAt, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeSessionToken giải mã session token.
// Trả về nil với mọi token không hợp lệ (base64 sai, thiếu dấu hai chấm,
// expiry không phải số) - không bao giờ panic.
func DecodeSessionToken(token string) *SessionClaims {
	if token == "" {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	// Username có thể chứa dấu hai chấm, expiry là phần sau dấu hai chấm cuối cùng
	decoded := string(raw)
	sep := strings.LastIndex(decoded, ":")
	if sep < 0 {
		return nil
	}

	username := decoded[:sep]
	expiresAt, err := strconv.ParseInt(decoded[sep+1:], 10, 64)
	if err != nil {
		return nil
	}
	if username == "" {
		return nil
	}

	return &SessionClaims{
		Username:  username,
		ExpiresAt: expiresAt,
	}
}

// IsSessionExpired kiểm tra phiên đã hết hạn chưa.
// Trả về true khi và chỉ khi thời điểm hiện tại đã vượt qua expiresAt.
func IsSessionExpired(expiresAt int64) bool {
	return time.Now().UnixMilli() > expiresAt
}

// ValidateSessionToken kiểm tra token giải mã được và chưa hết hạn
func ValidateSessionToken(token string) bool {
	claims := DecodeSessionToken(token)
	if claims == nil {
		return false
	}
	return !IsSessionExpired(claims.ExpiresAt)
}
