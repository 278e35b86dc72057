package main

import (
	"context"

	"cellic_store/config"
	"cellic_store/internal/database"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initDataSource()       // Khởi tạo backend lưu trữ (mongodb | google-sheets)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, slug, order_status, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateStoreIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create indexes: %v", err)
	} else {
		logrus.Info("Ensured collection indexes")
	}
}

// Hàm khởi tạo backend lưu trữ cho các đường đọc công khai.
// DATA_SOURCE chọn một lần khi khởi động, không hot-swap.
func initDataSource() {
	cfg := global.ServerConfig
	if err := datasource.Init(cfg.DataSource, cfg.GoogleSheetsBaseURL); err != nil {
		logrus.Fatalf("Failed to initialize data source: %v", err)
	}
	logrus.Infof("Initialized data source: %s", datasource.ActiveSource())
}
