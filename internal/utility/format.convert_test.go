// Package utility - Test sinh slug tiếng Việt và định dạng tiền VND.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug_TiengViet(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Sản phẩm đẹp", "san-pham-dep"},
		{"Kem Chống Nắng SPF50+", "kem-chong-nang-spf50"},
		{"Đánh giá   nhiều   khoảng trắng", "danh-gia-nhieu-khoang-trang"},
		{"--gạch--ngang--thừa--", "gach-ngang-thua"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title), "slug sinh ra không đúng")
		})
	}
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 đ"},
		{999, "999 đ"},
		{1000, "1.000 đ"},
		{1234567, "1.234.567 đ"},
		{-50000, "-50.000 đ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(tt.amount), "định dạng tiền cho %d không đúng", tt.amount)
	}
}

func TestString2ObjectID_HexKhongHopLe(t *testing.T) {
	id := String2ObjectID("không phải hex")
	assert.True(t, id.IsZero(), "hex không hợp lệ phải trả về ObjectID zero")
}
