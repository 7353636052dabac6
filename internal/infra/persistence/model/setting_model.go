package model

import "time"

// SettingModel mirrors the 'settings' key/value table.
type SettingModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
