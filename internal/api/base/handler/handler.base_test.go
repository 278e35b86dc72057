// Package basehdl - Test transform DTO sang model và parse tham số phân trang.
package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "cellic_store/internal/api/auth/dto"
	"cellic_store/internal/api/auth/models"
)

type transformInput struct {
	ProductID string `transform:"str_objectid"`
	Name      string
	Rating    int
	Extra     string // không có field tương ứng bên model
}

type transformModel struct {
	ProductID primitive.ObjectID
	Name      string
	Rating    int
	Status    string // không có bên input, giữ nguyên zero value
}

func TestTransformDTOToModel(t *testing.T) {
	hexID := primitive.NewObjectID().Hex()
	input := transformInput{ProductID: hexID, Name: "Serum B5", Rating: 5, Extra: "bỏ qua"}

	var model transformModel
	err := transformDTOToModel(&input, &model)
	require.NoError(t, err)

	assert.Equal(t, hexID, model.ProductID.Hex(), "string phải được chuyển thành ObjectID")
	assert.Equal(t, "Serum B5", model.Name)
	assert.Equal(t, 5, model.Rating)
	assert.Empty(t, model.Status)
}

func TestTransformDTOToModel_ObjectIDRong(t *testing.T) {
	var model transformModel
	err := transformDTOToModel(&transformInput{Name: "Không có ID"}, &model)
	require.NoError(t, err, "ObjectID rỗng được bỏ qua, không lỗi")
	assert.True(t, model.ProductID.IsZero())
}

func TestTransformDTOToModel_HexKhongHopLe(t *testing.T) {
	var model transformModel
	err := transformDTOToModel(&transformInput{ProductID: "khong-phai-hex"}, &model)
	require.Error(t, err, "hex sai định dạng phải trả về lỗi")
	assert.Contains(t, err.Error(), "ProductID")
}

func TestTransformDTOToModel_UserCoPhoneAddress(t *testing.T) {
	input := authdto.UserCreateInput{
		Name:     "Nguyễn Văn A",
		Email:    "a@cellic.vn",
		Password: "matkhau123",
		Phone:    "0901234567",
		Address:  "12 Lý Tự Trọng, Q1, TP.HCM",
		Role:     "user",
	}

	var user models.User
	err := transformDTOToModel(&input, &user)
	require.NoError(t, err)

	assert.Equal(t, "0901234567", user.Phone, "phone phải được map sang model")
	assert.Equal(t, "12 Lý Tự Trọng, Q1, TP.HCM", user.Address, "address phải được map sang model")
	assert.Equal(t, "a@cellic.vn", user.Email)
}

type partialUpdateModel struct {
	Title       string `json:"title" bson:"title"`
	IsPublished bool   `json:"isPublished" bson:"isPublished"`
	IsFeatured  bool   `json:"isFeatured" bson:"isFeatured"`
	ViewCount   int64  `json:"viewCount" bson:"viewCount"`
}

type partialUpdateInput struct {
	Title       string `json:"title"`
	IsPublished bool   `json:"isPublished"`
	IsFeatured  bool   `json:"isFeatured"`
	ViewCount   int64  `json:"viewCount"`
}

func TestBuildPartialUpdate_GiuBoolFalse(t *testing.T) {
	h := NewBaseHandler[partialUpdateModel, partialUpdateInput, partialUpdateInput](nil)

	// Unpublish: client gửi đúng một field với giá trị zero
	body := []byte(`{"isPublished": false}`)
	model := &partialUpdateModel{IsPublished: false}

	update, err := h.buildPartialUpdate(body, model)
	require.NoError(t, err)

	value, ok := update.Set["isPublished"]
	require.True(t, ok, "isPublished=false phải có trong $set để unpublish được bài viết")
	assert.Equal(t, false, value)

	// Field không gửi lên thì không được đụng tới
	_, ok = update.Set["isFeatured"]
	assert.False(t, ok, "field không có trong body không được vào $set")
	_, ok = update.Set["title"]
	assert.False(t, ok)
}

func TestBuildPartialUpdate_ChiLayFieldTrongBody(t *testing.T) {
	h := NewBaseHandler[partialUpdateModel, partialUpdateInput, partialUpdateInput](nil)

	body := []byte(`{"title": "Tiêu đề mới", "viewCount": 0}`)
	model := &partialUpdateModel{Title: "Tiêu đề mới", ViewCount: 0, IsPublished: false}

	update, err := h.buildPartialUpdate(body, model)
	require.NoError(t, err)

	assert.Equal(t, "Tiêu đề mới", update.Set["title"])

	value, ok := update.Set["viewCount"]
	require.True(t, ok, "số 0 gửi lên tường minh phải vào $set")
	assert.EqualValues(t, 0, value)

	_, ok = update.Set["isPublished"]
	assert.False(t, ok, "isPublished không có trong body, không được vào $set")
}

func TestBuildPartialUpdate_BoQuaID(t *testing.T) {
	h := NewBaseHandler[partialUpdateModel, partialUpdateInput, partialUpdateInput](nil)

	body := []byte(`{"id": "abc", "_id": "abc", "title": "Có ID"}`)
	model := &partialUpdateModel{Title: "Có ID"}

	update, err := h.buildPartialUpdate(body, model)
	require.NoError(t, err)

	_, ok := update.Set["_id"]
	assert.False(t, ok, "_id không bao giờ được vào $set")
	_, ok = update.Set["id"]
	assert.False(t, ok)
	assert.Equal(t, "Có ID", update.Set["title"])
}

func TestBuildPartialUpdate_BodyKhongPhaiJSON(t *testing.T) {
	h := NewBaseHandler[partialUpdateModel, partialUpdateInput, partialUpdateInput](nil)

	_, err := h.buildPartialUpdate([]byte("khong phai json"), &partialUpdateModel{})
	assert.Error(t, err, "body không phải JSON object phải trả về lỗi")
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int64
		wantLimit int64
	}{
		{"mặc định", "", 1, 10},
		{"hợp lệ", "page=3&limit=25", 3, 25},
		{"limit vượt trần", "page=1&limit=500", 1, 100},
		{"giá trị xấu", "page=abc&limit=-5", 1, 10},
		{"page âm", "page=-1&limit=0", 1, 10},
	}

	app := fiber.New()
	var gotPage, gotLimit int64
	app.Get("/paginate", func(c fiber.Ctx) error {
		gotPage, gotLimit = ParsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/paginate?"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tt.wantPage, gotPage, "page parse sai")
			assert.Equal(t, tt.wantLimit, gotLimit, "limit parse sai")
		})
	}
}
