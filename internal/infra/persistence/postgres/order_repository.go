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
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByCheckoutSessionID reads from the primary so a webhook retry sees an order committed moments ago.
func (repo *orderRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items").
		Where("stripe_checkout_session_id = ?", sessionID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by checkout session")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOrderNumber returns an order with its items.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUserID returns the user's orders, newest first.
func (repo *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(ordersM))
	for _, orderM := range ordersM {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create inserts the order row together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == model.OrderNumberUniqueIndex {
				return repository.ErrOrderNumberTaken
			}

			return domainerrors.ErrOrderAlreadyExists.WrapMessage("order already exists for checkout session")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
			order.Items[i].CreatedAt = itemM.CreatedAt
		}
	}

	return nil
}

// ClaimConfirmationEmail is a conditional update; only one caller sees RowsAffected == 1.
func (repo *orderRepository) ClaimConfirmationEmail(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND confirmation_email_sent = ?", orderID, false).
		Updates(map[string]any{
			"confirmation_email_sent":    true,
			"confirmation_email_sent_at": at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim confirmation email")
	}

	return result.RowsAffected == 1, nil
}

// ReleaseConfirmationEmail clears the confirmation flag after a failed dispatch.
func (repo *orderRepository) ReleaseConfirmationEmail(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"confirmation_email_sent":    false,
			"confirmation_email_sent_at": nil,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release confirmation email")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                      data.ID,
		OrderNumber:             data.OrderNumber,
		UserID:                  data.UserID,
		GuestEmail:              derefString(data.GuestEmail),
		GuestPhone:              derefString(data.GuestPhone),
		GuestSessionID:          derefString(data.GuestSessionID),
		BillingAddressID:        data.BillingAddressID,
		ShippingAddressID:       data.ShippingAddressID,
		Status:                  entity.OrderStatus(data.Status),
		PaymentStatus:           entity.PaymentStatus(data.PaymentStatus),
		Subtotal:                data.Subtotal,
		Tax:                     data.TaxAmount,
		Shipping:                data.ShippingAmount,
		Total:                   data.TotalAmount,
		Currency:                data.Currency,
		StripeCheckoutSessionID: derefString(data.StripeCheckoutSessionID),
		StripePaymentIntentID:   derefString(data.StripePaymentIntentID),
		Notes:                   data.Notes,
		ConfirmationEmailSent:   data.ConfirmationEmailSent,
		ConfirmationEmailSentAt: data.ConfirmationEmailSentAt,
		Items:                   make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}

	for i := range data.Items {
		item := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
			CreatedAt:   item.CreatedAt,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                      data.ID,
		OrderNumber:             data.OrderNumber,
		UserID:                  data.UserID,
		GuestEmail:              nilIfEmpty(data.GuestEmail),
		GuestPhone:              nilIfEmpty(data.GuestPhone),
		GuestSessionID:          nilIfEmpty(data.GuestSessionID),
		BillingAddressID:        data.BillingAddressID,
		ShippingAddressID:       data.ShippingAddressID,
		Status:                  string(data.Status),
		PaymentStatus:           string(data.PaymentStatus),
		Subtotal:                entity.RoundMoney(data.Subtotal),
		TaxAmount:               entity.RoundMoney(data.Tax),
		ShippingAmount:          entity.RoundMoney(data.Shipping),
		TotalAmount:             entity.RoundMoney(data.Total),
		Currency:                data.Currency,
		StripeCheckoutSessionID: nilIfEmpty(data.StripeCheckoutSessionID),
		StripePaymentIntentID:   nilIfEmpty(data.StripePaymentIntentID),
		Notes:                   data.Notes,
		ConfirmationEmailSent:   data.ConfirmationEmailSent,
		ConfirmationEmailSentAt: data.ConfirmationEmailSentAt,
		Items:                   make([]model.OrderItemModel, 0, len(data.Items)),
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       entity.RoundMoney(item.Price),
			Total:       entity.RoundMoney(item.Total),
		})
	}

	return orderM
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
