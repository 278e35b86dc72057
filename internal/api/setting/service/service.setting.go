// Package settingsvc - service cấu hình cửa hàng.
package settingsvc

import (
	"context"
	"fmt"

	basesvc "cellic_store/internal/api/base/service"
	models "cellic_store/internal/api/setting/models"
	"cellic_store/internal/common"
	"cellic_store/internal/datasource"
	"cellic_store/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// SettingService là cấu trúc chứa các phương thức liên quan đến cấu hình.
// Đường public đi qua datasource store, đường admin upsert-by-key cần
// semantics riêng của MongoDB.
type SettingService struct {
	*basesvc.BaseServiceMongoImpl[models.Setting]
	store datasource.EntityStore[models.Setting]
}

// NewSettingService tạo mới SettingService
func NewSettingService() (*SettingService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Setting](collection),
		store:                datasource.NewStore[models.Setting](global.ColNames.Settings, collection),
	}, nil
}

// InsertOne tạo cấu hình, mặc định kiểu string
func (s *SettingService) InsertOne(ctx context.Context, setting models.Setting) (models.Setting, error) {
	if setting.Type == "" {
		setting.Type = models.SettingTypeString
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, setting)
}

// GetPublicSettings trả về các cấu hình công khai (isPublic=true), sắp theo key
func (s *SettingService) GetPublicSettings(ctx context.Context) ([]models.Setting, error) {
	logrus.Debug("GetPublicSettings")

	settings, err := s.store.GetAll(ctx,
		map[string]interface{}{"isPublic": true},
		&datasource.ListOptions{Sort: map[string]int{"key": 1}},
	)
	if err != nil {
		logrus.WithError(err).Error("GetPublicSettings: Lỗi lấy cấu hình")
		return nil, err
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	return settings, nil
}

// GetByKey trả về cấu hình theo key
func (s *SettingService) GetByKey(ctx context.Context, key string) (models.Setting, error) {
	return s.FindOne(ctx, bson.M{"key": key}, nil)
}

// UpsertByKey tạo mới hoặc cập nhật cấu hình theo key
func (s *SettingService) UpsertByKey(ctx context.Context, setting models.Setting) (models.Setting, error) {
	if setting.Type == "" {
		setting.Type = models.SettingTypeString
	}
	return s.Upsert(ctx, bson.M{"key": setting.Key}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":         setting.Key,
			"value":       setting.Value,
			"type":        setting.Type,
			"description": setting.Description,
			"group":       setting.Group,
			"isPublic":    setting.IsPublic,
		},
	})
}
