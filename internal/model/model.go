// Package model defines the records the service persists, the payloads
// it accepts, and the projections it returns.
package model

import "time"

// Base holds the columns every table carries.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
