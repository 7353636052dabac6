package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the GORM-backed UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID loads an order owner; replica reads are fine here.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id), "id")
}

// FindByEmail backs the duplicate-account check during registration, so it reads from the
// primary: a user promoted a moment ago must already be visible.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("email = ?", email), "email")
}

func (repo *userRepository) findOne(query *gorm.DB, by string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to find user by %s", by)
	}

	return toUserDomain(&userM), nil
}

// Create inserts a verified user. Losing the users_email_unique race maps to ErrEmailAlreadyRegistered.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err) && violatedConstraint(err) != "" && violatedConstraint(err) != model.UserEmailUniqueIndex:
			return domainerrors.NewDatabaseExecuteError(err, "unexpected unique violation creating user")
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		EmailVerifiedAt: data.EmailVerifiedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		EmailVerifiedAt: data.EmailVerifiedAt,
	}
}
