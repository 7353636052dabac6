// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType distinguishes the role an address plays on an order.
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// Address is a postal address captured for an order. Addresses are never
// deduplicated: every order gets its own billing and shipping rows.
type Address struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	UserID     *uuid.UUID  // Owning user, nil for guest orders.
	Type       AddressType // Billing or shipping.
	Name       string      // Recipient name.
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// IsComplete reports whether the address carries the fields required to ship an order.
func (a *Address) IsComplete() bool {
	return strings.TrimSpace(a.Line1) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.Country) != ""
}

// CopyAs returns a copy of the address retyped for another role.
func (a *Address) CopyAs(addrType AddressType) *Address {
	cp := *a
	cp.ID = uuid.Nil
	cp.Type = addrType

	return &cp
}

// Format renders the address on a single line for mail templates.
func (a *Address) Format() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.Name, a.Line1, a.Line2, a.City, strings.TrimSpace(a.State + " " + a.PostalCode), a.Country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
