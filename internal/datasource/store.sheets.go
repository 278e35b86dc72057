package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	basemodels "cellic_store/internal/api/base/models"
	"cellic_store/internal/common"
)

// SheetsClient gọi Google Sheets web app qua HTTP.
// Web app nhận ?entity=<tên>&action=<getAll|getById|create|update|delete>
// và trả về JSON {success, data, error}.
type SheetsClient struct {
	baseURL string
	client  *http.Client
}

// NewSheetsClient tạo client với timeout cố định (Apps Script có thể chậm)
func NewSheetsClient(baseURL string) *SheetsClient {
	return &SheetsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// sheetsResponse là envelope trả về từ web app
type sheetsResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// call gửi request đến web app và decode envelope
func (sc *SheetsClient) call(ctx context.Context, method, entity, action string, params map[string]string, body interface{}) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("entity", entity)
	query.Set("action", action)
	for k, v := range params {
		query.Set(k, v)
	}
	requestURL := sc.baseURL + "?" + query.Encode()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi encode dữ liệu gửi Google Sheets: %v", err),
				common.StatusInternalServerError,
				err,
			)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabase, fmt.Sprintf("Lỗi tạo request Google Sheets: %v", err), common.StatusInternalServerError, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Không thể kết nối đến Google Sheets web app: %v", err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabase, fmt.Sprintf("Lỗi đọc response từ Google Sheets: %v", err), common.StatusInternalServerError, err)
	}

	var envelope sheetsResponse
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Response từ Google Sheets không đúng định dạng JSON",
			common.StatusInternalServerError,
			err,
		)
	}

	if !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("Google Sheets trả về lỗi (HTTP %d)", resp.StatusCode)
		}
		if strings.Contains(strings.ToLower(message), "not found") {
			return nil, common.ErrNotFound
		}
		return nil, common.NewError(common.ErrCodeDatabase, message, common.StatusInternalServerError, nil)
	}

	return envelope.Data, nil
}

// SheetsStore hiện thực EntityStore trên Google Sheets web app.
// Web app không hỗ trợ filter/sort nên filter và phân trang được áp dụng
// phía server sau khi fetch toàn bộ.
type SheetsStore[T any] struct {
	entity string
	client *SheetsClient
}

// NewSheetsStore tạo store Google Sheets cho một entity
func NewSheetsStore[T any](entity string, client *SheetsClient) *SheetsStore[T] {
	return &SheetsStore[T]{entity: entity, client: client}
}

func (s *SheetsStore[T]) GetAll(ctx context.Context, filter map[string]interface{}, opts *ListOptions) ([]T, error) {
	data, err := s.client.call(ctx, http.MethodGet, s.entity, "getAll", nil, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu entity từ Google Sheets không đúng định dạng", common.StatusInternalServerError, err)
		}
	}
	if items == nil {
		items = []T{}
	}

	items = filterItems(items, filter)

	if opts != nil {
		if len(opts.Sort) > 0 {
			sortItems(items, opts.Sort)
		}
		if opts.Skip > 0 {
			if opts.Skip >= int64(len(items)) {
				items = []T{}
			} else {
				items = items[opts.Skip:]
			}
		}
		if opts.Limit > 0 && int64(len(items)) > opts.Limit {
			items = items[:opts.Limit]
		}
	}

	return items, nil
}

func (s *SheetsStore[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	data, err := s.client.call(ctx, http.MethodGet, s.entity, "getById", map[string]string{"id": id}, nil)
	if err != nil {
		return zero, err
	}
	if len(data) == 0 || string(data) == "null" {
		return zero, common.ErrNotFound
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu entity từ Google Sheets không đúng định dạng", common.StatusInternalServerError, err)
	}
	return item, nil
}

func (s *SheetsStore[T]) Create(ctx context.Context, data T) (T, error) {
	var zero T
	raw, err := s.client.call(ctx, http.MethodPost, s.entity, "create", nil, data)
	if err != nil {
		return zero, err
	}

	var created T
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &created); err != nil {
			return zero, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu entity từ Google Sheets không đúng định dạng", common.StatusInternalServerError, err)
		}
		return created, nil
	}
	// Web app cũ có thể không trả lại record vừa tạo
	return data, nil
}

func (s *SheetsStore[T]) Update(ctx context.Context, id string, set map[string]interface{}) (T, error) {
	var zero T
	raw, err := s.client.call(ctx, http.MethodPost, s.entity, "update", map[string]string{"id": id}, set)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return s.GetByID(ctx, id)
	}

	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu entity từ Google Sheets không đúng định dạng", common.StatusInternalServerError, err)
	}
	return updated, nil
}

func (s *SheetsStore[T]) Delete(ctx context.Context, id string) error {
	_, err := s.client.call(ctx, http.MethodPost, s.entity, "delete", map[string]string{"id": id}, nil)
	return err
}

func (s *SheetsStore[T]) List(ctx context.Context, filter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[T], error) {
	all, err := s.GetAll(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	return PaginateSlice(all, page, limit), nil
}

// filterItems so khớp các field cấp một của filter với item (equality).
// Item được convert sang map qua JSON để so sánh không phụ thuộc kiểu.
func filterItems[T any](items []T, filter map[string]interface{}) []T {
	if len(filter) == 0 {
		return items
	}

	matched := []T{}
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var itemMap map[string]interface{}
		if err := json.Unmarshal(raw, &itemMap); err != nil {
			continue
		}

		ok := true
		for field, want := range filter {
			if !valueEquals(itemMap[field], want) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched
}

// valueEquals so sánh hai giá trị qua biểu diễn chuỗi (số từ JSON là float64)
func valueEquals(got, want interface{}) bool {
	if got == nil || want == nil {
		return got == want
	}
	return fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want)
}

// sortItems sắp xếp in-process theo các field trong sortSpec (1 tăng, -1 giảm).
// Giá trị field được so sánh qua biểu diễn JSON của item.
func sortItems[T any](items []T, sortSpec map[string]int) {
	type entry struct {
		item T
		m    map[string]interface{}
	}
	entries := make([]entry, len(items))
	for i, item := range items {
		e := entry{item: item}
		if raw, err := json.Marshal(item); err == nil {
			_ = json.Unmarshal(raw, &e.m)
		}
		entries[i] = e
	}

	// Cố định thứ tự duyệt field để kết quả ổn định khi sort nhiều field
	fields := make([]string, 0, len(sortSpec))
	for field := range sortSpec {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	sort.SliceStable(entries, func(i, j int) bool {
		for _, field := range fields {
			cmp := compareValues(entries[i].m[field], entries[j].m[field])
			if cmp == 0 {
				continue
			}
			if sortSpec[field] < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})

	for i, e := range entries {
		items[i] = e.item
	}
}

// compareValues so sánh hai giá trị JSON: số theo giá trị, còn lại theo chuỗi
func compareValues(a, b interface{}) int {
	if aNum, ok := a.(float64); ok {
		if bNum, ok := b.(float64); ok {
			switch {
			case aNum < bNum:
				return -1
			case aNum > bNum:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}
