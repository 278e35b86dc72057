package datasource

// Lớp trừu tượng nguồn dữ liệu: MongoDB (mặc định) hoặc Google Sheets web app.
// Backend được chọn một lần lúc khởi động qua DATA_SOURCE, không đổi trong runtime.

import (
	"context"
	"fmt"
	"strings"

	basemodels "cellic_store/internal/api/base/models"
	"cellic_store/internal/common"

	"go.mongodb.org/mongo-driver/mongo"
)

// Các giá trị hợp lệ của DATA_SOURCE
const (
	SourceMongoDB      = "mongodb"
	SourceGoogleSheets = "google-sheets"
)

// ListOptions chứa tùy chọn sắp xếp và giới hạn khi lấy danh sách
type ListOptions struct {
	Sort  map[string]int // 1: tăng dần, -1: giảm dần
	Limit int64
	Skip  int64
}

// EntityStore là interface chung cho mọi backend lưu trữ entity.
// Lỗi từ backend được trả về nguyên trạng, không retry.
type EntityStore[T any] interface {
	GetAll(ctx context.Context, filter map[string]interface{}, opts *ListOptions) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, data T) (T, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (T, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[T], error)
}

// provider giữ lựa chọn backend cho toàn process
type provider struct {
	source       string
	sheetsClient *SheetsClient
}

var activeProvider = &provider{source: SourceMongoDB}

// Init chọn backend lưu trữ từ cấu hình. Gọi một lần duy nhất khi khởi động.
func Init(source string, sheetsBaseURL string) error {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", SourceMongoDB:
		activeProvider = &provider{source: SourceMongoDB}
	case SourceGoogleSheets:
		if sheetsBaseURL == "" {
			return common.NewError(
				common.ErrCodeValidationInput,
				"GOOGLE_SHEETS_WEB_APP_URL là bắt buộc khi DATA_SOURCE=google-sheets",
				common.StatusInternalServerError,
				nil,
			)
		}
		activeProvider = &provider{
			source:       SourceGoogleSheets,
			sheetsClient: NewSheetsClient(sheetsBaseURL),
		}
	default:
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("DATA_SOURCE không hợp lệ: '%s' (chấp nhận: mongodb, google-sheets)", source),
			common.StatusInternalServerError,
			nil,
		)
	}
	return nil
}

// ActiveSource trả về backend đang được sử dụng
func ActiveSource() string {
	return activeProvider.source
}

// PaginateSlice phân trang một slice đã lọc/sắp xếp in-process.
// Dùng cho backend không hỗ trợ phân trang phía nguồn dữ liệu.
func PaginateSlice[T any](items []T, page, limit int64) *basemodels.PaginateResult[T] {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total := int64(len(items))
	start := (page - 1) * limit
	end := start + limit
	pageItems := []T{}
	if start < total {
		if end > total {
			end = total
		}
		pageItems = items[start:end]
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(pageItems)),
		Items:     pageItems,
		Total:     total,
		TotalPage: (total + limit - 1) / limit,
	}
}

// NewStore tạo store cho một entity theo backend đang hoạt động.
// entityName dùng làm tham số entity của web app Google Sheets,
// collection dùng cho backend MongoDB.
func NewStore[T any](entityName string, collection *mongo.Collection) EntityStore[T] {
	if activeProvider.source == SourceGoogleSheets {
		return NewSheetsStore[T](entityName, activeProvider.sheetsClient)
	}
	return NewMongoStore[T](collection)
}
