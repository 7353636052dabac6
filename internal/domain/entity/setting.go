package entity

import "time"

// Setting is a store-wide key/value configuration entry managed from the back office.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
