package entity

import (
	"time"
)

const (
	orderNumberPrefix       = "ORD-"
	orderNumberRandomLength = 8
)

// GenerateOrderNumber returns a human-facing order number such as ORD-20260114-7K2QX9AB.
// Callers must assign it before persisting an order; uniqueness is enforced by the store.
func GenerateOrderNumber(now time.Time) (string, error) {
	suffix, err := randomString(orderNumberRandomLength, upperAlphanumeric)
	if err != nil {
		return "", err
	}

	return orderNumberPrefix + now.UTC().Format("20060102") + "-" + suffix, nil
}
