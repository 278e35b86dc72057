// Package registry - Test Register/Get/GetOrCreate/Clear của generic registry.
package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("products", "collection-products")
	require.NoError(t, err)
	assert.True(t, isNew, "đăng ký lần đầu phải là item mới")

	item, exists := r.Get("products")
	require.True(t, exists)
	assert.Equal(t, "collection-products", item)

	// Đăng ký lại cùng tên: ghi đè, isNew = false
	isNew, err = r.Register("products", "collection-products-v2")
	require.NoError(t, err)
	assert.False(t, isNew)

	item, _ = r.Get("products")
	assert.Equal(t, "collection-products-v2", item)
}

func TestRegistry_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err, "tên rỗng phải bị từ chối")
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()

	_, exists := r.Get("khong-ton-tai")
	assert.False(t, exists)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("counter", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả về item đã có, không gọi lại creator
	item, err = r.GetOrCreate("counter", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls, "creator chỉ được gọi một lần")
}

func TestRegistry_GetOrCreate_CreatorLoi(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.GetOrCreate("bad", func() (int, error) {
		return 0, errors.New("tạo thất bại")
	})
	assert.Error(t, err)

	_, exists := r.Get("bad")
	assert.False(t, exists, "creator lỗi thì không được lưu item")
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("orders", "collection-orders")

	deleted, err := r.Clear("orders", nil)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, exists := r.Get("orders")
	assert.False(t, exists)

	// Clear item không tồn tại: không lỗi, deleted = false
	deleted, err = r.Clear("orders", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
