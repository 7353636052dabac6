package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table.
type CartModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         *uuid.UUID          `gorm:"type:uuid;index"`
	GuestSessionID *string             `gorm:"column:session_id;type:varchar(255);index"`
	ShippingCost   decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	Items          []CartItemModel     `gorm:"foreignKey:CartID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	SizeID    *uuid.UUID      `gorm:"type:uuid"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ProductModel is the read-only slice of the catalog 'products' table needed to snapshot order lines.
type ProductModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
