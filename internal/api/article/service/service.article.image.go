package articlesvc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cellic_store/internal/common"
	"cellic_store/internal/global"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// Các đuôi file ảnh được phép upload
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// articlesDir trả về đường dẫn tuyệt đối của thư mục ảnh bài viết
func articlesDir() (string, error) {
	publicDir := "./public"
	if global.ServerConfig != nil && global.ServerConfig.PublicDir != "" {
		publicDir = global.ServerConfig.PublicDir
	}
	dir, err := filepath.Abs(filepath.Join(publicDir, "articles"))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi xác định thư mục ảnh", common.StatusInternalServerError, err)
	}
	return dir, nil
}

// SaveImage lưu ảnh upload vào <public>/articles với tên <timestamp>-<random><ext>,
// trả về URL tương đối /articles/<file>.
func (s *ArticleService) SaveImage(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Định dạng ảnh '%s' không được hỗ trợ (chấp nhận: jpg, jpeg, png, webp, gif)", ext),
			common.StatusBadRequest,
			nil,
		)
	}
	if len(data) == 0 {
		return "", common.NewError(common.ErrCodeValidationInput, "File ảnh rỗng", common.StatusBadRequest, nil)
	}

	dir, err := articlesDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi tạo thư mục ảnh", common.StatusInternalServerError, err)
	}

	// timestamp + random để tên file không đụng nhau giữa các request
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	fullPath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		logrus.WithFields(logrus.Fields{"path": fullPath, "error": err.Error()}).Error("SaveImage: Lỗi ghi file")
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi lưu file ảnh", common.StatusInternalServerError, err)
	}

	logrus.WithFields(logrus.Fields{"filename": filename, "size": len(data)}).Info("SaveImage: Upload ảnh thành công")
	return "/articles/" + filename, nil
}

// resolveImagePath đổi URL tương đối /articles/<file> sang đường dẫn tuyệt đối,
// kiểm tra path containment để chống path traversal.
func resolveImagePath(relativeURL string) (string, error) {
	dir, err := articlesDir()
	if err != nil {
		return "", err
	}

	name := strings.TrimPrefix(relativeURL, "/articles/")
	full, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, "Đường dẫn ảnh không hợp lệ", common.StatusBadRequest, err)
	}
	if !strings.HasPrefix(full, dir+string(filepath.Separator)) {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			"Đường dẫn ảnh nằm ngoài thư mục cho phép",
			common.StatusBadRequest,
			nil,
		)
	}
	return full, nil
}

// DeleteImage xóa một ảnh theo URL tương đối, có kiểm tra path containment
func (s *ArticleService) DeleteImage(relativeURL string) error {
	full, err := resolveImagePath(relativeURL)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return common.ErrNotFound
		}
		logrus.WithFields(logrus.Fields{"path": full, "error": err.Error()}).Error("DeleteImage: Lỗi xóa file")
		return common.NewError(common.ErrCodeInternalServer, "Lỗi xóa file ảnh", common.StatusInternalServerError, err)
	}

	logrus.WithFields(logrus.Fields{"url": relativeURL}).Info("DeleteImage: Xóa ảnh thành công")
	return nil
}

// CleanupImages xóa các file trong <public>/articles không còn được bài viết nào
// tham chiếu (trong featuredImage hoặc content). Trả về danh sách file đã xóa.
func (s *ArticleService) CleanupImages(ctx context.Context) ([]string, error) {
	dir, err := articlesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi đọc thư mục ảnh", common.StatusInternalServerError, err)
	}

	articles, err := s.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	// Gom toàn bộ text có thể chứa tham chiếu ảnh
	var refs strings.Builder
	for _, a := range articles {
		refs.WriteString(a.FeaturedImage)
		refs.WriteString("\n")
		refs.WriteString(a.Content)
		refs.WriteString("\n")
	}
	referenced := refs.String()

	removed := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(referenced, name) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			logrus.WithFields(logrus.Fields{"filename": name, "error": err.Error()}).Warn("CleanupImages: Không xóa được file")
			continue
		}
		removed = append(removed, name)
	}

	logrus.WithFields(logrus.Fields{"removed": len(removed), "total": len(entries)}).Info("CleanupImages: Hoàn tất dọn ảnh")
	return removed, nil
}
