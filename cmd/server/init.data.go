package main

import (
	"context"

	settingmodels "cellic_store/internal/api/setting/models"
	settingsvc "cellic_store/internal/api/setting/service"
	"cellic_store/internal/global"
	"cellic_store/internal/logger"
)

// defaultSettings là các cấu hình trang mặc định, chỉ tạo khi key chưa tồn tại
// (không ghi đè giá trị admin đã chỉnh).
var defaultSettings = []settingmodels.Setting{
	{Key: "site_name", Value: "Cellic", Type: settingmodels.SettingTypeString, Group: "general", IsPublic: true, Description: "Tên cửa hàng hiển thị trên trang"},
	{Key: "site_tagline", Value: "Chăm sóc da khoa học", Type: settingmodels.SettingTypeString, Group: "general", IsPublic: true, Description: "Khẩu hiệu hiển thị dưới tên cửa hàng"},
	{Key: "hotline", Value: "", Type: settingmodels.SettingTypeString, Group: "contact", IsPublic: true, Description: "Số điện thoại liên hệ"},
	{Key: "contact_email", Value: "", Type: settingmodels.SettingTypeString, Group: "contact", IsPublic: true, Description: "Email liên hệ hiển thị trên trang"},
	{Key: "store_address", Value: "", Type: settingmodels.SettingTypeString, Group: "contact", IsPublic: true, Description: "Địa chỉ cửa hàng"},
	{Key: "facebook_url", Value: "", Type: settingmodels.SettingTypeString, Group: "social", IsPublic: true, Description: "Link fanpage Facebook"},
	{Key: "free_ship_threshold", Value: "500000", Type: settingmodels.SettingTypeNumber, Group: "checkout", IsPublic: true, Description: "Ngưỡng miễn phí vận chuyển (VND)"},
}

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	ctx := context.TODO()

	// 1. Khởi tạo cấu hình trang mặc định (nếu chưa có)
	settingService, err := settingsvc.NewSettingService()
	if err != nil {
		log.Fatalf("Failed to initialize setting service: %v", err)
	}
	for _, setting := range defaultSettings {
		exists, err := settingService.DocumentExists(ctx, map[string]interface{}{"key": setting.Key})
		if err != nil {
			log.Warnf("Failed to check setting %s: %v", setting.Key, err)
			continue
		}
		if exists {
			continue
		}
		if _, err := settingService.InsertOne(ctx, setting); err != nil {
			log.Warnf("Failed to seed setting %s: %v", setting.Key, err)
		} else {
			log.Infof("Seeded default setting: %s", setting.Key)
		}
	}

	// 2. Tài khoản superuser lấy từ ADMIN_USERNAME/ADMIN_PASSWORD, không cần
	// document trong collection users. Các tài khoản admin bổ sung tạo qua API.
	if global.ServerConfig.AdminUsername != "" {
		log.Infof("Superuser account available from environment: %s", global.ServerConfig.AdminUsername)
	}

	log.Info("InitDefaultData completed")
}
