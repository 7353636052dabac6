package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unique index names on the 'orders' table, matched against constraint violations.
const (
	OrderNumberUniqueIndex          = "orders_order_number_unique"
	OrderCheckoutSessionUniqueIndex = "orders_stripe_checkout_session_id_unique"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber             string          `gorm:"type:varchar(32);uniqueIndex:orders_order_number_unique;not null"`
	UserID                  *uuid.UUID      `gorm:"type:uuid;index"`
	GuestEmail              *string         `gorm:"type:varchar(255)"`
	GuestPhone              *string         `gorm:"type:varchar(50)"`
	GuestSessionID          *string         `gorm:"type:varchar(255)"`
	BillingAddressID        uuid.UUID       `gorm:"type:uuid;not null"`
	ShippingAddressID       uuid.UUID       `gorm:"type:uuid;not null"`
	Status                  string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus           string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Subtotal                decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount               decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAmount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency                string          `gorm:"type:varchar(3);not null"`
	StripeCheckoutSessionID *string         `gorm:"type:varchar(255);uniqueIndex:orders_stripe_checkout_session_id_unique"`
	StripePaymentIntentID   *string         `gorm:"type:varchar(255)"`
	Notes                   string          `gorm:"type:text"`
	ConfirmationEmailSent   bool            `gorm:"not null;default:false"`
	ConfirmationEmailSentAt *time.Time
	Items                   []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
