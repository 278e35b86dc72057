// Package orderdto - DTO cho domain order.
package orderdto

import "encoding/json"

// CheckoutInput đầu vào của đường checkout POST /orders/save-to-db.
// Items nhận cả chuỗi JSON lẫn mảng đã parse (client cũ gửi cả hai dạng),
// được chuẩn hóa bằng ParseOrderItems ở service.
type CheckoutInput struct {
	CustomerName  string          `json:"customerName" validate:"required,no_xss"`
	CustomerEmail string          `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string          `json:"customerPhone" validate:"required"`
	UserID        string          `json:"userId" validate:"omitempty"`
	Street        string          `json:"street"`
	Ward          string          `json:"ward"`
	District      string          `json:"district"`
	Province      string          `json:"province"`
	PaymentMethod string          `json:"paymentMethod" validate:"omitempty,oneof=cod bank"`
	Items         json.RawMessage `json:"items"`
	Total         float64         `json:"total" validate:"gte=0"`
	Notes         string          `json:"notes"`
}

// OrderCreateInput đầu vào tạo đơn hàng từ admin (CRUD).
type OrderCreateInput struct {
	OrderNumber   string  `json:"orderNumber"`
	CustomerName  string  `json:"customerName" validate:"required,no_xss"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string  `json:"customerPhone" validate:"required"`
	UserID        string  `json:"userId" validate:"omitempty" transform:"str_objectid"`
	Street        string  `json:"street"`
	Ward          string  `json:"ward"`
	District      string  `json:"district"`
	Province      string  `json:"province"`
	Status        string  `json:"status" validate:"omitempty,order_status"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=cod bank"`
	Items         string  `json:"items"`
	Total         float64 `json:"total" validate:"gte=0"`
	Notes         string  `json:"notes"`
}

// OrderUpdateInput đầu vào cập nhật đơn hàng.
type OrderUpdateInput struct {
	CustomerName  string  `json:"customerName" validate:"omitempty,no_xss"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string  `json:"customerPhone"`
	Street        string  `json:"street"`
	Ward          string  `json:"ward"`
	District      string  `json:"district"`
	Province      string  `json:"province"`
	Status        string  `json:"status" validate:"omitempty,order_status"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=cod bank"`
	Items         string  `json:"items"`
	Total         float64 `json:"total" validate:"omitempty,gte=0"`
	Notes         string  `json:"notes"`
}

// OrderStatusInput đầu vào cập nhật trạng thái đơn hàng.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,order_status"`
}
