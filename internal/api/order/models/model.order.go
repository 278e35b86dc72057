// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị hợp lệ của Order.Status. Không có state machine:
// admin có thể đặt bất kỳ giá trị hợp lệ nào, chỉ validate enum membership.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Các giá trị hợp lệ của Order.PaymentMethod
const (
	PaymentMethodCOD  = "cod"
	PaymentMethodBank = "bank"
)

// Order định nghĩa mô hình đơn hàng.
// Items được lưu dưới dạng chuỗi JSON (giữ nguyên từ hệ thống cũ),
// parse lại bằng ParseOrderItems khi cần đọc.
// Địa chỉ ward/district/province là free text, không chuẩn hóa.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNumber   string             `json:"orderNumber" bson:"orderNumber" index:"unique,sparse"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	CustomerEmail string             `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerPhone string             `json:"customerPhone" bson:"customerPhone"`
	UserID        primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Street        string             `json:"street,omitempty" bson:"street,omitempty"`
	Ward          string             `json:"ward,omitempty" bson:"ward,omitempty"`
	District      string             `json:"district,omitempty" bson:"district,omitempty"`
	Province      string             `json:"province,omitempty" bson:"province,omitempty"`
	Status        string             `json:"status" bson:"status"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	Items         string             `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrderItem là một dòng hàng trong đơn
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}
