// Package settingdto - DTO cho domain setting.
package settingdto

// SettingCreateInput đầu vào tạo/upsert cấu hình.
type SettingCreateInput struct {
	Key         string `json:"key" validate:"required,setting_key"`
	Value       string `json:"value"`
	Type        string `json:"type" validate:"omitempty,oneof=string number image boolean json"`
	Description string `json:"description"`
	Group       string `json:"group"`
	IsPublic    bool   `json:"isPublic"`
}

// SettingUpdateInput đầu vào cập nhật cấu hình.
type SettingUpdateInput struct {
	Value       string `json:"value"`
	Type        string `json:"type" validate:"omitempty,oneof=string number image boolean json"`
	Description string `json:"description"`
	Group       string `json:"group"`
	IsPublic    bool   `json:"isPublic"`
}
