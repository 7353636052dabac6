package impl

import (
	"strings"
	"unicode"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// minAddressSegments is the shortest metadata address we accept: "Line1, City, Country".
const minAddressSegments = 3

// shippingAddressFromSession prefers the provider's structured customer details.
// The comma-separated metadata string is a legacy fallback and cannot represent
// addresses that themselves contain commas.
func shippingAddressFromSession(session *service.CheckoutSession) (*entity.Address, error) {
	details := session.CustomerDetails

	if details != nil && details.Address != nil &&
		(strings.TrimSpace(details.Address.Line1) != "" || strings.TrimSpace(details.Address.City) != "") {
		addr := &entity.Address{
			Type:       entity.AddressTypeShipping,
			Name:       strings.TrimSpace(details.Name),
			Line1:      strings.TrimSpace(details.Address.Line1),
			Line2:      strings.TrimSpace(details.Address.Line2),
			City:       strings.TrimSpace(details.Address.City),
			State:      strings.TrimSpace(details.Address.State),
			PostalCode: strings.TrimSpace(details.Address.PostalCode),
			Country:    strings.TrimSpace(details.Address.Country),
			Phone:      strings.TrimSpace(details.Phone),
		}
		if addr.IsComplete() {
			return addr, nil
		}
	}

	addr, err := parseAddressLine(session.Metadata[constants.MetadataShippingAddress])
	if err != nil {
		return nil, err
	}
	if details != nil {
		if name := strings.TrimSpace(details.Name); name != "" {
			addr.Name = name
		}
		addr.Phone = strings.TrimSpace(details.Phone)
	}

	return addr, nil
}

// parseAddressLine splits "Name, Line1, [Line2...,] City, State Postal, Country".
// Four segments drop the name and three keep only "Line1, City, Country".
func parseAddressLine(raw string) (*entity.Address, error) {
	segments := make([]string, 0, 6)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}

	if len(segments) < minAddressSegments {
		return nil, domainerrors.ErrAddressUnparsable.WithDetails("expected at least line, city and country")
	}

	addr := &entity.Address{Type: entity.AddressTypeShipping}
	n := len(segments)

	switch n {
	case 3:
		addr.Line1, addr.City, addr.Country = segments[0], segments[1], segments[2]
	case 4:
		addr.Line1, addr.City = segments[0], segments[1]
		addr.State, addr.PostalCode = splitStatePostal(segments[2])
		addr.Country = segments[3]
	default:
		addr.Name = segments[0]
		addr.Line1 = segments[1]
		addr.Line2 = strings.Join(segments[2:n-3], ", ")
		addr.City = segments[n-3]
		addr.State, addr.PostalCode = splitStatePostal(segments[n-2])
		addr.Country = segments[n-1]
	}

	if !addr.IsComplete() {
		return nil, domainerrors.ErrAddressUnparsable.WithDetails("address is missing line, city or country")
	}

	return addr, nil
}

// splitStatePostal treats the trailing run of fields containing a digit as the postal code.
func splitStatePostal(segment string) (state, postal string) {
	fields := strings.Fields(segment)

	cut := len(fields)
	for cut > 0 && strings.IndexFunc(fields[cut-1], unicode.IsDigit) >= 0 {
		cut--
	}

	return strings.Join(fields[:cut], " "), strings.Join(fields[cut:], " ")
}
