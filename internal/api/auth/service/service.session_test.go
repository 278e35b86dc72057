// Package authsvc - Test mã hóa/giải mã session token và kiểm tra hết hạn.
package authsvc

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSessionToken_RoundTrip(t *testing.T) {
	expiresAt := time.Now().Add(SessionDuration).UnixMilli()
	token := EncodeSessionToken("admin", expiresAt)

	claims := DecodeSessionToken(token)
	require.NotNil(t, claims, "token hợp lệ phải decode được")
	assert.Equal(t, "admin", claims.Username, "username sau round-trip phải giữ nguyên")
	assert.Equal(t, expiresAt, claims.ExpiresAt, "expiresAt sau round-trip phải giữ nguyên")
}

func TestDecodeSessionToken_UsernameChuaDauHaiCham(t *testing.T) {
	// Username dạng email hoặc chứa dấu hai chấm: expiry là phần sau dấu hai chấm cuối
	token := EncodeSessionToken("admin:cellic@example.com", 1700000000000)

	claims := DecodeSessionToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, "admin:cellic@example.com", claims.Username)
	assert.Equal(t, int64(1700000000000), claims.ExpiresAt)
}

func TestDecodeSessionToken_TokenKhongHopLe(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"rỗng", ""},
		{"không phải base64", "!!!không-phải-base64!!!"},
		{"thiếu dấu hai chấm", base64.StdEncoding.EncodeToString([]byte("adminkhongcodauhaicham"))},
		{"expiry không phải số", base64.StdEncoding.EncodeToString([]byte("admin:khongphaiso"))},
		{"username rỗng", base64.StdEncoding.EncodeToString([]byte(":1700000000000"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := DecodeSessionToken(tt.token)
			assert.Nil(t, claims, "token không hợp lệ phải trả về nil, không panic")
		})
	}
}

func TestIsSessionExpired(t *testing.T) {
	now := time.Now().UnixMilli()

	assert.False(t, IsSessionExpired(now+60_000), "phiên còn hạn không được coi là hết hạn")
	assert.True(t, IsSessionExpired(now-60_000), "phiên quá hạn phải bị coi là hết hạn")
}

func TestIsSessionExpired_MocHetHan(t *testing.T) {
	// Phiên hết hạn khi now > expiresAt: đúng mốc expiresAt vẫn còn hợp lệ,
	// qua mốc 1ms là hết hạn.
	now := time.Now().UnixMilli()

	assert.False(t, IsSessionExpired(now), "expiresAt bằng đúng now vẫn phải còn hợp lệ")
	assert.True(t, IsSessionExpired(now-1), "qua mốc hết hạn 1ms phải bị coi là hết hạn")
}
