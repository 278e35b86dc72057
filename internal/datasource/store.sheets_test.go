// Package datasource - Test lọc equality và so sánh giá trị của backend Google Sheets.
package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sheetProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	IsHot    bool    `json:"isHot"`
}

var sheetFixtures = []sheetProduct{
	{ID: "1", Name: "Serum B5", Category: "serum", Price: 350000, IsHot: true},
	{ID: "2", Name: "Toner hoa hồng", Category: "toner", Price: 180000, IsHot: false},
	{ID: "3", Name: "Serum HA", Category: "serum", Price: 420000, IsHot: false},
}

func TestFilterItems_TheoCategory(t *testing.T) {
	got := filterItems(sheetFixtures, map[string]interface{}{"category": "serum"})

	require.Len(t, got, 2, "phải lọc ra đúng 2 sản phẩm serum")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterItems_NhieuDieuKien(t *testing.T) {
	got := filterItems(sheetFixtures, map[string]interface{}{
		"category": "serum",
		"isHot":    true,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Serum B5", got[0].Name)
}

func TestFilterItems_FilterRong(t *testing.T) {
	got := filterItems(sheetFixtures, nil)
	assert.Len(t, got, len(sheetFixtures), "filter rỗng trả về tất cả")
}

func TestFilterItems_KhongKhopTraVeMangRong(t *testing.T) {
	got := filterItems(sheetFixtures, map[string]interface{}{"category": "mask"})

	require.NotNil(t, got, "không khớp vẫn trả về mảng rỗng, không phải nil")
	assert.Empty(t, got)
}

type sheetArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishedAt int64  `json:"publishedAt"`
}

func TestSortItems_GiamDanTheoPublishedAt(t *testing.T) {
	articles := []sheetArticle{
		{ID: "a", Title: "Cũ nhất", PublishedAt: 100},
		{ID: "b", Title: "Mới nhất", PublishedAt: 300},
		{ID: "c", Title: "Ở giữa", PublishedAt: 200},
	}

	sortItems(articles, map[string]int{"publishedAt": -1})

	require.Len(t, articles, 3)
	assert.Equal(t, "b", articles[0].ID, "bài mới nhất phải đứng đầu")
	assert.Equal(t, "c", articles[1].ID)
	assert.Equal(t, "a", articles[2].ID)
}

func TestSortItems_TangDanTheoChuoi(t *testing.T) {
	settings := []struct {
		Key string `json:"key"`
	}{
		{Key: "site_name"},
		{Key: "contact_email"},
		{Key: "hotline"},
	}

	sortItems(settings, map[string]int{"key": 1})

	assert.Equal(t, "contact_email", settings[0].Key)
	assert.Equal(t, "hotline", settings[1].Key)
	assert.Equal(t, "site_name", settings[2].Key)
}

func TestSortItems_OnDinhKhiGiaTriBang(t *testing.T) {
	items := []sheetArticle{
		{ID: "x", PublishedAt: 100},
		{ID: "y", PublishedAt: 100},
		{ID: "z", PublishedAt: 100},
	}

	sortItems(items, map[string]int{"publishedAt": -1})

	// Sort ổn định: giá trị bằng nhau giữ nguyên thứ tự ban đầu
	assert.Equal(t, "x", items[0].ID)
	assert.Equal(t, "y", items[1].ID)
	assert.Equal(t, "z", items[2].ID)
}

func TestGetAllApDungSortTruocSkipLimit(t *testing.T) {
	// Sort rồi mới skip/limit: trang 2 phải là phần tử kế tiếp theo thứ tự đã sort
	items := []sheetArticle{
		{ID: "a", PublishedAt: 100},
		{ID: "b", PublishedAt: 300},
		{ID: "c", PublishedAt: 200},
	}
	sortItems(items, map[string]int{"publishedAt": -1})

	page := PaginateSlice(items, 2, 1)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c", page.Items[0].ID)
}

func TestValueEquals_SoQuaJSON(t *testing.T) {
	// Số đọc từ JSON là float64; filter có thể truyền int
	assert.True(t, valueEquals(float64(350000), 350000), "float64 từ JSON phải khớp với int cùng giá trị")
	assert.True(t, valueEquals("serum", "serum"))
	assert.False(t, valueEquals("serum", "toner"))
	assert.True(t, valueEquals(nil, nil))
	assert.False(t, valueEquals(nil, "serum"))
}
