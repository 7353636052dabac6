package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrSettingNotFound is returned when a setting key has never been written.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository stores store-wide key/value settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*entity.Setting, error)
	Upsert(ctx context.Context, setting *entity.Setting) error
}
