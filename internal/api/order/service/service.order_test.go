// Package ordersvc - Test chuẩn hóa items và sinh mã đơn hàng.
package ordersvc

import (
	"encoding/json"
	"regexp"
	"testing"

	models "cellic_store/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderItems_ChuoiJSON(t *testing.T) {
	raw := `[{"id":"sp-1","name":"Serum B5","price":350000,"quantity":2}]`

	items := ParseOrderItems(raw)
	require.Len(t, items, 1, "chuỗi JSON hợp lệ phải parse ra đúng số items")
	assert.Equal(t, "Serum B5", items[0].Name)
	assert.Equal(t, float64(350000), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestParseOrderItems_DuLieuXau(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"nil", nil},
		{"chuỗi rỗng", ""},
		{"chuỗi không phải JSON", "không phải json"},
		{"số", 42},
		{"object thay vì mảng", map[string]interface{}{"id": "sp-1"}},
		{"json.RawMessage null", json.RawMessage("null")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ParseOrderItems(tt.raw)
			require.NotNil(t, items, "luôn trả về mảng, không bao giờ nil")
			assert.Empty(t, items, "dữ liệu xấu phải cho ra mảng rỗng")
		})
	}
}

func TestParseOrderItems_MangDaParse(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"id": "sp-1", "name": "Kem chống nắng", "price": float64(420000), "quantity": float64(1)},
	}

	items := ParseOrderItems(raw)
	require.Len(t, items, 1)
	assert.Equal(t, "Kem chống nắng", items[0].Name)
	assert.Equal(t, float64(420000), items[0].Price)
}

func TestParseOrderItems_ChuoiJSONLong(t *testing.T) {
	// Client cũ gửi items dưới dạng chuỗi JSON lồng trong JSON
	inner := `[{"id":"sp-2","name":"Toner","price":180000,"quantity":3}]`
	payload, err := json.Marshal(inner)
	require.NoError(t, err)

	items := ParseOrderItems(json.RawMessage(payload))
	require.Len(t, items, 1)
	assert.Equal(t, "Toner", items[0].Name)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestParseOrderItems_GiuNguyenMangOrderItem(t *testing.T) {
	raw := []models.OrderItem{{ID: "sp-3", Name: "Sữa rửa mặt", Price: 150000, Quantity: 1}}

	items := ParseOrderItems(raw)
	require.Len(t, items, 1)
	assert.Equal(t, "sp-3", items[0].ID)
}

func TestGenerateOrderNumber_DungDinhDang(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-\d{4}$`)

	for i := 0; i < 10; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number, "mã đơn hàng phải có dạng ORD-<timestamp>-<4 chữ số>")
	}
}
