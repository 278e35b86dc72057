// Package models - model cấu hình cửa hàng (Setting) thuộc domain setting.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các kiểu ngữ nghĩa của Setting.Value (value luôn lưu dạng string)
const (
	SettingTypeString  = "string"
	SettingTypeNumber  = "number"
	SettingTypeImage   = "image"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// Setting định nghĩa mô hình cấu hình key/value của cửa hàng.
// IsPublic quyết định key có được trả ra endpoint công khai hay không.
type Setting struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key         string             `json:"key" bson:"key" index:"unique"`
	Value       string             `json:"value" bson:"value"`
	Type        string             `json:"type" bson:"type"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Group       string             `json:"group,omitempty" bson:"group,omitempty"`
	IsPublic    bool               `json:"isPublic" bson:"isPublic"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
