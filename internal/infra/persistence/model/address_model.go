package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Type       string     `gorm:"type:varchar(20);not null"`
	Name       string     `gorm:"type:varchar(255)"`
	Line1      string     `gorm:"column:address_line_1;type:varchar(255);not null"`
	Line2      string     `gorm:"column:address_line_2;type:varchar(255)"`
	City       string     `gorm:"type:varchar(100);not null"`
	State      string     `gorm:"type:varchar(100)"`
	PostalCode string     `gorm:"type:varchar(20)"`
	Country    string     `gorm:"type:varchar(100);not null"`
	Phone      string     `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
