// Package catalogsvc - Test chặn slug dành riêng của danh mục.
package catalogsvc

import (
	"errors"
	"testing"

	"cellic_store/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReservedSlug(t *testing.T) {
	assert.NoError(t, validateReservedSlug("serum"), "slug thường phải hợp lệ")
	assert.NoError(t, validateReservedSlug(""), "slug rỗng để auto-generate, không chặn ở đây")

	err := validateReservedSlug("all")
	require.Error(t, err, "slug 'all' là khóa ảo, phải bị chặn")

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr), "lỗi phải là *common.Error")
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}
