package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// settingService is a cache-aside reader over the settings table.
type settingService struct {
	repo   repository.SettingRepository
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]string
}

// SettingServiceParams holds dependencies for SettingService, injected by Fx.
type SettingServiceParams struct {
	fx.In

	Repo   repository.SettingRepository
	Logger *slog.Logger
}

// NewSettingService is the constructor for settingService.
func NewSettingService(params SettingServiceParams) usecase.SettingUsecase {
	return &settingService{
		repo:   params.Repo,
		logger: params.Logger,
		cache:  make(map[string]string),
	}
}

// Get reads through the cache. Missing keys are not cached so a later write shows up immediately.
func (srv *settingService) Get(ctx context.Context, key string) (string, error) {
	srv.mu.RLock()
	value, ok := srv.cache[key]
	srv.mu.RUnlock()
	if ok {
		return value, nil
	}

	setting, err := srv.repo.Get(ctx, key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	srv.mu.Lock()
	srv.cache[key] = setting.Value
	srv.mu.Unlock()

	return setting.Value, nil
}

// GetOrDefault never fails; read errors are logged and answered with fallback.
func (srv *settingService) GetOrDefault(ctx context.Context, key, fallback string) string {
	value, err := srv.Get(ctx, key)
	if err == nil && value != "" {
		return value
	}
	if err != nil && !errors.Is(err, repository.ErrSettingNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to read setting, using fallback",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return fallback
}

// Set writes through to the repository and drops the cached value.
func (srv *settingService) Set(ctx context.Context, key, value string) error {
	if err := srv.repo.Upsert(ctx, &entity.Setting{Key: key, Value: value}); err != nil {
		return errors.Wrap(err, "failed to save setting")
	}

	srv.mu.Lock()
	delete(srv.cache, key)
	srv.mu.Unlock()

	return nil
}
