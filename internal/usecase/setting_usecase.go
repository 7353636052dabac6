package usecase

import "context"

// SettingUsecase reads and writes store-wide settings through a process cache.
type SettingUsecase interface {
	// Get returns the stored value or repository.ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)

	// GetOrDefault returns the stored value, or fallback when the key is unset or unreadable.
	GetOrDefault(ctx context.Context, key, fallback string) string

	// Set writes the value and invalidates the cached entry.
	Set(ctx context.Context, key, value string) error
}
