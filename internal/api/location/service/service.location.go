// Package locationsvc - proxy API hành chính công (tỉnh/huyện/xã).
package locationsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cellic_store/internal/common"
	"cellic_store/internal/global"

	"github.com/sirupsen/logrus"
)

// LocationService gọi API hành chính công bên thứ ba
type LocationService struct {
	baseURL string
	client  *http.Client
}

// NewLocationService tạo mới LocationService
func NewLocationService() *LocationService {
	baseURL := "https://provinces.open-api.vn/api"
	if global.ServerConfig != nil && global.ServerConfig.ProvinceAPIBaseURL != "" {
		baseURL = global.ServerConfig.ProvinceAPIBaseURL
	}
	return &LocationService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// fetch gọi API và decode JSON response
func (s *LocationService) fetch(ctx context.Context, path string) (interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi tạo request location API", common.StatusInternalServerError, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": path, "error": err.Error()}).Error("LocationService: Lỗi gọi API hành chính công")
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không thể kết nối đến API hành chính công",
			common.StatusServiceUnavailable,
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, common.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("API hành chính công trả về HTTP %d", resp.StatusCode),
			common.StatusInternalServerError,
			nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi đọc response location API", common.StatusInternalServerError, err)
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Response location API không đúng định dạng JSON", common.StatusInternalServerError, err)
	}
	return data, nil
}

// GetProvinces trả về danh sách tỉnh/thành phố
func (s *LocationService) GetProvinces(ctx context.Context) (interface{}, error) {
	return s.fetch(ctx, "/p/")
}

// GetDistricts trả về tỉnh kèm danh sách quận/huyện theo mã tỉnh
func (s *LocationService) GetDistricts(ctx context.Context, provinceCode string) (interface{}, error) {
	return s.fetch(ctx, fmt.Sprintf("/p/%s?depth=2", provinceCode))
}

// GetWards trả về quận/huyện kèm danh sách phường/xã theo mã quận/huyện
func (s *LocationService) GetWards(ctx context.Context, districtCode string) (interface{}, error) {
	return s.fetch(ctx, fmt.Sprintf("/d/%s?depth=2", districtCode))
}
