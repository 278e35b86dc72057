// Package ordersvc - service đơn hàng và checkout.
package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	authsvc "cellic_store/internal/api/auth/service"
	basesvc "cellic_store/internal/api/base/service"
	orderdto "cellic_store/internal/api/order/dto"
	models "cellic_store/internal/api/order/models"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng.
// Đường checkout từ storefront đi qua datasource store (đổi được backend),
// đường admin CRUD dùng base service MongoDB.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	store datasource.EntityStore[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](collection),
		store:                datasource.NewStore[models.Order](global.ColNames.Orders, collection),
	}, nil
}

// ParseOrderItems chuẩn hóa field items - dữ liệu cũ có thể là chuỗi JSON,
// mảng đã parse, hoặc null:
//   - chuỗi: parse JSON, lỗi thì log warning và trả mảng rỗng
//   - mảng: giữ nguyên (chuẩn hóa qua JSON round-trip)
//   - còn lại (nil, số, object...): mảng rỗng
func ParseOrderItems(raw interface{}) []models.OrderItem {
	switch value := raw.(type) {
	case nil:
		return []models.OrderItem{}

	case string:
		if value == "" {
			return []models.OrderItem{}
		}
		var items []models.OrderItem
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			logrus.WithFields(logrus.Fields{"raw": value, "error": err.Error()}).Warn("ParseOrderItems: Chuỗi items không phải JSON hợp lệ")
			return []models.OrderItem{}
		}
		if items == nil {
			return []models.OrderItem{}
		}
		return items

	case []models.OrderItem:
		return value

	case json.RawMessage:
		return parseRawItems([]byte(value))

	case []byte:
		return parseRawItems(value)

	default:
		// Mảng đã parse ([]interface{}) chuẩn hóa qua JSON round-trip
		payload, err := json.Marshal(value)
		if err != nil {
			return []models.OrderItem{}
		}
		return parseRawItems(payload)
	}
}

// parseRawItems xử lý bytes JSON: có thể là mảng, hoặc chuỗi JSON chứa mảng
func parseRawItems(payload []byte) []models.OrderItem {
	if len(payload) == 0 || string(payload) == "null" {
		return []models.OrderItem{}
	}

	var items []models.OrderItem
	if err := json.Unmarshal(payload, &items); err == nil {
		if items == nil {
			return []models.OrderItem{}
		}
		return items
	}

	// Client cũ gửi items dưới dạng chuỗi JSON lồng trong JSON
	var nested string
	if err := json.Unmarshal(payload, &nested); err == nil {
		return ParseOrderItems(nested)
	}

	logrus.WithFields(logrus.Fields{"raw": string(payload)}).Warn("ParseOrderItems: Dữ liệu items không đúng định dạng")
	return []models.OrderItem{}
}

// GenerateOrderNumber sinh mã đơn hàng dạng ORD-<timestamp>-<random>
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

// CheckoutResult là kết quả của đường checkout
type CheckoutResult struct {
	Order   *models.Order `json:"order,omitempty"`
	Warning string        `json:"warning,omitempty"`
}

// SaveCheckout lưu đơn hàng từ storefront checkout.
// Lỗi lưu database được nuốt và hạ cấp thành success-with-warning
// để checkout UX không bị chặn khi database gặp sự cố.
func (s *OrderService) SaveCheckout(ctx context.Context, input *orderdto.CheckoutInput) (*CheckoutResult, error) {
	items := ParseOrderItems(json.RawMessage(input.Items))
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		itemsJSON = []byte("[]")
	}

	order := models.Order{
		OrderNumber:   GenerateOrderNumber(),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Street:        input.Street,
		Ward:          input.Ward,
		District:      input.District,
		Province:      input.Province,
		Status:        models.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Items:         string(itemsJSON),
		Total:         input.Total,
		Notes:         input.Notes,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodCOD
	}
	if input.UserID != "" && primitive.IsValidObjectID(input.UserID) {
		order.UserID = utility.String2ObjectID(input.UserID)
	}

	saved, err := s.store.Create(ctx, order)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_number": order.OrderNumber,
			"customer":     order.CustomerName,
			"error":        err.Error(),
		}).Error("SaveCheckout: Lỗi lưu đơn hàng, trả về success-with-warning")
		return &CheckoutResult{
			Order:   &order,
			Warning: "Đơn hàng đã được ghi nhận nhưng chưa lưu được vào hệ thống. Chúng tôi sẽ liên hệ xác nhận qua điện thoại.",
		}, nil
	}

	logrus.WithFields(logrus.Fields{"order_number": saved.OrderNumber, "total": utility.FormatVND(int64(saved.Total))}).Info("SaveCheckout: Lưu đơn hàng thành công")

	// Thông báo email cho admin, không bao giờ chặn response checkout
	go utility.GoProtect(func() {
		s.sendOrderNotification(&saved, items)
	})

	return &CheckoutResult{Order: &saved}, nil
}

// InsertOne tạo đơn hàng, sinh mã và gán trạng thái mặc định khi thiếu
func (s *OrderService) InsertOne(ctx context.Context, order models.Order) (models.Order, error) {
	if order.OrderNumber == "" {
		order.OrderNumber = GenerateOrderNumber()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, order)
}

// OrderDetail là đơn hàng kèm thông tin người dùng (join theo userId) và items đã parse
type OrderDetail struct {
	models.Order
	ParsedItems []models.OrderItem `json:"parsedItems"`
	UserName    string             `json:"userName,omitempty"`
	UserEmail   string             `json:"userEmail,omitempty"`
}

// GetOrderDetail trả về đơn hàng kèm tên/email người dùng để hiển thị.
// userId chỉ là tham chiếu theo convention nên lỗi lookup không làm fail request.
func (s *OrderService) GetOrderDetail(ctx context.Context, id primitive.ObjectID) (*OrderDetail, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{
		Order:       order,
		ParsedItems: ParseOrderItems(order.Items),
	}

	if !order.UserID.IsZero() {
		if userService, err := authsvc.NewUserService(); err == nil {
			if user, err := userService.BaseServiceMongoImpl.FindOneById(ctx, order.UserID); err == nil {
				detail.UserName = user.Name
				detail.UserEmail = user.Email
			} else {
				logrus.WithFields(logrus.Fields{"order_id": id.Hex(), "user_id": order.UserID.Hex()}).Warn("GetOrderDetail: Không tìm thấy user của đơn hàng")
			}
		}
	}

	return detail, nil
}

// UpdateStatus cập nhật trạng thái đơn hàng (enum đã validate ở DTO)
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Order, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}
