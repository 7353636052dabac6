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
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByID returns the cart with its items and product names.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByGuestSessionID returns the newest cart owned by a guest session.
func (repo *cartRepository) FindByGuestSessionID(ctx context.Context, sessionID string) (*entity.Cart, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at DESC"))
}

func (repo *cartRepository) findOne(_ context.Context, query *gorm.DB) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := query.Preload("Items.Product").First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Delete removes the cart items first, then the cart itself.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("cart_id = ?", id).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items")
	}

	result := db.Where("id = ?", id).Delete(&model.CartModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:           data.ID,
		UserID:       data.UserID,
		ShippingCost: data.ShippingCost,
		Items:        make([]*entity.CartItem, 0, len(data.Items)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.GuestSessionID != nil {
		cart.GuestSessionID = *data.GuestSessionID
	}

	for i := range data.Items {
		item := &data.Items[i]

		cartItem := &entity.CartItem{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			SizeID:    item.SizeID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			cartItem.ProductName = item.Product.Name
		}
		cart.Items = append(cart.Items, cartItem)
	}

	return cart
}
