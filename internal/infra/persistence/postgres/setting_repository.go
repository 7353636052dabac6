package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the domain.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// Get returns a single setting by key.
func (repo *settingRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	var settingM model.SettingModel
	if err := repo.db.WithContext(ctx).Where("key = ?", key).First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return &entity.Setting{
		Key:       settingM.Key,
		Value:     settingM.Value,
		UpdatedAt: settingM.UpdatedAt,
	}, nil
}

// Upsert inserts the setting or overwrites its value.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := &model.SettingModel{
		Key:   setting.Key,
		Value: setting.Value,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}
