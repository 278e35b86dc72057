package main

import (
	"fmt"

	"cellic_store/internal/global"
	"cellic_store/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (level, format, thư mục log)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":    cfg.Address,
		"dataSource": cfg.DataSource,
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator, database, datasource)
	InitGlobal()

	// Khởi tạo registry collections
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
