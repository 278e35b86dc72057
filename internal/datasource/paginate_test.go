// Package datasource - Test phân trang slice cho backend không đẩy được filter xuống DB.
package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	result := PaginateSlice(items, 1, 3)
	require.NotNil(t, result)
	assert.Equal(t, []int{1, 2, 3}, result.Items)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, int64(3), result.TotalPage, "7 items với limit 3 phải là 3 trang")
	assert.Equal(t, int64(3), result.ItemCount)

	// Trang cuối chỉ còn 1 item
	result = PaginateSlice(items, 3, 3)
	assert.Equal(t, []int{7}, result.Items)
	assert.Equal(t, int64(1), result.ItemCount)
}

func TestPaginateSlice_TrangVuotQua(t *testing.T) {
	items := []string{"a", "b"}

	result := PaginateSlice(items, 5, 10)
	require.NotNil(t, result.Items, "trang vượt quá vẫn trả mảng rỗng, không phải nil")
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(2), result.Total)
}

func TestPaginateSlice_ThamSoXau(t *testing.T) {
	items := []int{1, 2, 3}

	// page/limit không hợp lệ quay về mặc định
	result := PaginateSlice(items, 0, 0)
	assert.Equal(t, int64(1), result.Page)
	assert.Equal(t, int64(10), result.Limit)
	assert.Equal(t, []int{1, 2, 3}, result.Items)
}

func TestPaginateSlice_MangRong(t *testing.T) {
	result := PaginateSlice([]int{}, 1, 10)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, int64(0), result.TotalPage)
}
