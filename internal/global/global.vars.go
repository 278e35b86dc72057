package global

import (
	"cellic_store/config"
	"cellic_store/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users      string // Tên collection cho tài khoản admin
	Products   string // Tên collection cho sản phẩm
	Categories string // Tên collection cho danh mục sản phẩm
	Articles   string // Tên collection cho bài viết
	Orders     string // Tên collection cho đơn hàng
	Comments   string // Tên collection cho bình luận sản phẩm
	Reviews    string // Tên collection cho đánh giá từ khách hàng
	Settings   string // Tên collection cho cấu hình trang
	Contacts   string // Tên collection cho tin nhắn liên hệ
}

// Các biến toàn cục
var Validate *validator.Validate                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                        // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                   // Cấu hình của server
var ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)       // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// InitColNames gán tên cố định cho các collection
func InitColNames() {
	ColNames.Users = "users"
	ColNames.Products = "products"
	ColNames.Categories = "categories"
	ColNames.Articles = "articles"
	ColNames.Orders = "orders"
	ColNames.Comments = "comments"
	ColNames.Reviews = "reviews"
	ColNames.Settings = "settings"
	ColNames.Contacts = "contacts"
}
