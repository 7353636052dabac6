package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSettingRepo struct{}

func (failingSettingRepo) Get(context.Context, string) (*entity.Setting, error) {
	return nil, errors.New("connection refused")
}

func (failingSettingRepo) Upsert(context.Context, *entity.Setting) error {
	return errors.New("connection refused")
}

func TestSettingService_GetCachesValues(t *testing.T) {
	store := newMemStore()
	store.settings["store.name"] = entity.Setting{Key: "store.name", Value: "Corner Shop"}
	srv := NewSettingService(SettingServiceParams{Repo: &memSettingRepo{store: store}, Logger: newDiscardLogger()})

	for range 3 {
		value, err := srv.Get(context.Background(), "store.name")
		require.NoError(t, err)
		assert.Equal(t, "Corner Shop", value)
	}
	assert.Equal(t, 1, store.settingReads)
}

func TestSettingService_MissingKeysAreNotCached(t *testing.T) {
	store := newMemStore()
	srv := NewSettingService(SettingServiceParams{Repo: &memSettingRepo{store: store}, Logger: newDiscardLogger()})

	_, err := srv.Get(context.Background(), "store.name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSettingNotFound))

	store.settings["store.name"] = entity.Setting{Key: "store.name", Value: "Corner Shop"}

	value, err := srv.Get(context.Background(), "store.name")
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", value)
}

func TestSettingService_SetInvalidatesCache(t *testing.T) {
	store := newMemStore()
	srv := NewSettingService(SettingServiceParams{Repo: &memSettingRepo{store: store}, Logger: newDiscardLogger()})

	require.NoError(t, srv.Set(context.Background(), "store.name", "Before"))
	assert.Equal(t, "Before", srv.GetOrDefault(context.Background(), "store.name", "fallback"))

	require.NoError(t, srv.Set(context.Background(), "store.name", "After"))
	assert.Equal(t, "After", srv.GetOrDefault(context.Background(), "store.name", "fallback"))
	assert.Equal(t, 2, store.settingReads)
}

func TestSettingService_GetOrDefault(t *testing.T) {
	store := newMemStore()
	store.settings["store.blank"] = entity.Setting{Key: "store.blank", Value: ""}
	srv := NewSettingService(SettingServiceParams{Repo: &memSettingRepo{store: store}, Logger: newDiscardLogger()})

	assert.Equal(t, "fallback", srv.GetOrDefault(context.Background(), "store.missing", "fallback"))
	assert.Equal(t, "fallback", srv.GetOrDefault(context.Background(), "store.blank", "fallback"))

	broken := NewSettingService(SettingServiceParams{Repo: failingSettingRepo{}, Logger: newDiscardLogger()})
	assert.Equal(t, "fallback", broken.GetOrDefault(context.Background(), "store.name", "fallback"))
	assert.Error(t, broken.Set(context.Background(), "store.name", "x"))
}
