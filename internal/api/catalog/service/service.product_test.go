// Package catalogsvc - Test các helper lọc sản phẩm in-process.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Serum B5 Phục Hồi", "serum b5"), "tìm kiếm không được phân biệt hoa thường")
	assert.True(t, containsFold("Kem chống nắng", "chống nắng"))
	assert.False(t, containsFold("Sữa rửa mặt", "toner"))
	assert.True(t, containsFold("bất kỳ", ""), "needle rỗng khớp mọi chuỗi")
}

func TestHasAnyNeed(t *testing.T) {
	productNeeds := []string{"da-dau", "mun"}

	assert.True(t, hasAnyNeed(productNeeds, []string{"mun"}), "khớp một nhu cầu là đủ")
	assert.True(t, hasAnyNeed(productNeeds, []string{"da-kho", "da-dau"}))
	assert.False(t, hasAnyNeed(productNeeds, []string{"da-kho"}))
	assert.False(t, hasAnyNeed(nil, []string{"mun"}), "sản phẩm không khai báo nhu cầu thì không khớp")
}
