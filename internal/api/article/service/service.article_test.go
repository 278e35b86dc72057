// Package articlesvc - Test lọc từ khóa in-process cho backend không hỗ trợ search.
package articlesvc

import (
	"testing"

	models "cellic_store/internal/api/article/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	article := models.Article{
		Title:   "Chăm Sóc Da Mụn Đúng Cách",
		Excerpt: "Routine buổi tối cho da dầu mụn",
	}

	assert.True(t, matchesSearch(article, "da mụn"), "khớp tiêu đề không phân biệt hoa thường")
	assert.True(t, matchesSearch(article, "routine"), "khớp cả mô tả ngắn")
	assert.False(t, matchesSearch(article, "chống nắng"))
}
