package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// pendingVerificationRepository implements the domain.PendingVerificationRepository interface using GORM.
type pendingVerificationRepository struct {
	db *gorm.DB
}

// NewPendingVerificationRepository is the constructor for pendingVerificationRepository.
func NewPendingVerificationRepository(db *gorm.DB) repository.PendingVerificationRepository {
	return &pendingVerificationRepository{db: db}
}

// Create inserts a new pending record.
func (repo *pendingVerificationRepository) Create(ctx context.Context, pending *entity.PendingVerification) error {
	pendingM := fromPendingVerificationDomain(pending)

	if err := repo.db.WithContext(ctx).Create(pendingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVerificationPending.WrapMessage("pending verification already exists for email")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pending verification")
	}

	pending.ID = pendingM.ID
	pending.CreatedAt = pendingM.CreatedAt
	pending.UpdatedAt = pendingM.UpdatedAt

	return nil
}

// FindByEmail returns the pending record for email, expired or not.
func (repo *pendingVerificationRepository) FindByEmail(ctx context.Context, email string) (*entity.PendingVerification, error) {
	var pendingM model.PendingVerificationModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&pendingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending verification by email")
	}

	return toPendingVerificationDomain(&pendingM), nil
}

// FindByTokenAndEmailForUpdate locks the matching row on the primary until the transaction ends.
func (repo *pendingVerificationRepository) FindByTokenAndEmailForUpdate(ctx context.Context, token, email string) (*entity.PendingVerification, error) {
	var pendingM model.PendingVerificationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("verification_token = ? AND email = ?", token, email).
		First(&pendingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock pending verification")
	}

	return toPendingVerificationDomain(&pendingM), nil
}

// Update saves the token and expiry of an existing record.
func (repo *pendingVerificationRepository) Update(ctx context.Context, pending *entity.PendingVerification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PendingVerificationModel{}).
		Where("id = ?", pending.ID).
		Updates(map[string]any{
			"verification_token": pending.Token,
			"token_expires_at":   pending.TokenExpiresAt,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pending verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPendingVerificationNotFound
	}

	return nil
}

// Delete removes the record by id.
func (repo *pendingVerificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PendingVerificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pending verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPendingVerificationNotFound
	}

	return nil
}

// DeleteExpired removes every record whose expiry is at or before cutoff.
func (repo *pendingVerificationRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("token_expires_at <= ?", cutoff).
		Delete(&model.PendingVerificationModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired pending verifications")
	}

	return result.RowsAffected, nil
}

// CountExpired counts records whose expiry is at or before cutoff.
func (repo *pendingVerificationRepository) CountExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PendingVerificationModel{}).
		Where("token_expires_at <= ?", cutoff).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count expired pending verifications")
	}

	return count, nil
}

// Count returns the total number of pending records.
func (repo *pendingVerificationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PendingVerificationModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending verifications")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPendingVerificationDomain(data *model.PendingVerificationModel) *entity.PendingVerification {
	if data == nil {
		return nil
	}

	return &entity.PendingVerification{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Token:          data.Token,
		TokenExpiresAt: data.TokenExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPendingVerificationDomain(data *entity.PendingVerification) *model.PendingVerificationModel {
	if data == nil {
		return nil
	}

	return &model.PendingVerificationModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Token:          data.Token,
		TokenExpiresAt: data.TokenExpiresAt,
	}
}
