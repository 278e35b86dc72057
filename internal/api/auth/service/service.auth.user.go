// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "cellic_store/internal/api/auth/models"
	basesvc "cellic_store/internal/api/base/service"
	"cellic_store/internal/common"
	"cellic_store/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// HashPassword tạo bcrypt hash cho mật khẩu
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu với bcrypt hash
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// InsertOne tạo người dùng mới, tự động hash mật khẩu trước khi lưu.
// Override phương thức của base service để mọi đường tạo user (kể cả CRUD
// handler dùng chung) đều đi qua bcrypt.
func (s *UserService) InsertOne(ctx context.Context, user models.User) (models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Password != "" {
		hashed, err := HashPassword(user.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hashed
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, user)
}

// UpdateById cập nhật người dùng, hash lại mật khẩu nếu có trong dữ liệu cập nhật
func (s *UserService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.User, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		if raw, exists := updateData.Set["password"]; exists {
			if password, ok := raw.(string); ok && password != "" {
				hashed, err := HashPassword(password)
				if err != nil {
					return models.User{}, err
				}
				updateData.Set["password"] = hashed
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// FindByEmail tìm người dùng theo email
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate xác thực thông tin đăng nhập.
// Hai cơ chế song song: superuser từ environment (ADMIN_USERNAME/ADMIN_PASSWORD)
// và người dùng trong collection users với mật khẩu bcrypt.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (role string, err error) {
	cfg := global.ServerConfig
	if cfg != nil && cfg.AdminUsername != "" && username == cfg.AdminUsername {
		if password == cfg.AdminPassword {
			return models.RoleAdmin, nil
		}
		logrus.WithFields(logrus.Fields{"username": username}).Warn("Authenticate: Sai mật khẩu superuser")
		return "", common.ErrInvalidCredentials
	}

	user, err := s.FindByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(user.Password, password) {
		logrus.WithFields(logrus.Fields{"username": username}).Warn("Authenticate: Sai mật khẩu")
		return "", common.ErrInvalidCredentials
	}
	return user.Role, nil
}

// ResolveRole xác định role của một username đã có phiên hợp lệ.
// Superuser từ environment luôn là admin; còn lại tra trong collection users.
func (s *UserService) ResolveRole(ctx context.Context, username string) (string, error) {
	cfg := global.ServerConfig
	if cfg != nil && cfg.AdminUsername != "" && username == cfg.AdminUsername {
		return models.RoleAdmin, nil
	}

	user, err := s.FindByEmail(ctx, username)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
