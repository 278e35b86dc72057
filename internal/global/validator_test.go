// Package global - Test các custom validator (slug, order_status, no_xss, setting_key).
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	InitValidator()
	m.Run()
}

func TestValidateSlug(t *testing.T) {
	type input struct {
		Slug string `validate:"omitempty,slug"`
	}

	assert.NoError(t, Validate.Struct(input{Slug: "san-pham-moi"}))
	assert.NoError(t, Validate.Struct(input{Slug: ""}), "slug rỗng hợp lệ (auto-generate)")
	assert.Error(t, Validate.Struct(input{Slug: "Sản Phẩm"}), "slug có dấu/hoa phải bị từ chối")
	assert.Error(t, Validate.Struct(input{Slug: "-dau-gach-"}), "slug bắt đầu/kết thúc bằng gạch ngang phải bị từ chối")
}

func TestValidateOrderStatus(t *testing.T) {
	type input struct {
		Status string `validate:"order_status"`
	}

	for _, status := range []string{"pending", "confirmed", "shipping", "delivered", "cancelled"} {
		assert.NoError(t, Validate.Struct(input{Status: status}), "trạng thái %s phải hợp lệ", status)
	}
	assert.Error(t, Validate.Struct(input{Status: "completed"}), "trạng thái ngoài danh sách phải bị từ chối")
	assert.Error(t, Validate.Struct(input{Status: ""}))
}

func TestValidateNoXSS(t *testing.T) {
	type input struct {
		Content string `validate:"no_xss"`
	}

	assert.NoError(t, Validate.Struct(input{Content: "Sản phẩm rất tốt, da mình cải thiện rõ"}))
	assert.Error(t, Validate.Struct(input{Content: `<script>alert(1)</script>`}))
	assert.Error(t, Validate.Struct(input{Content: `<img src=x onerror=alert(1)>`}))
}

func TestValidateRating_GioiHan(t *testing.T) {
	type input struct {
		Rating int `validate:"required,gte=1,lte=5"`
	}

	assert.NoError(t, Validate.Struct(input{Rating: 1}))
	assert.NoError(t, Validate.Struct(input{Rating: 5}))

	err := Validate.Struct(input{Rating: 6})
	require.Error(t, err, "rating 6 phải bị từ chối")
	assert.Contains(t, err.Error(), "Rating", "lỗi validation phải nêu tên field")

	assert.Error(t, Validate.Struct(input{Rating: 0}), "rating 0 phải bị từ chối")
}

func TestValidateSettingKey(t *testing.T) {
	type input struct {
		Key string `validate:"setting_key"`
	}

	assert.NoError(t, Validate.Struct(input{Key: "site.hotline"}))
	assert.NoError(t, Validate.Struct(input{Key: "free_ship_threshold"}))
	assert.Error(t, Validate.Struct(input{Key: "Key Viết Hoa"}))
}
