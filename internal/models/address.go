package models

import (
	"time"

	"github.com/google/uuid"
)

// AddressDB represents a saved destination in the database.
// A user has at most one row per exact (lat, lng) pair; repeat visits
// refresh the label and timestamp instead of inserting a duplicate.
type AddressDB struct {
	AddressID uuid.UUID `db:"address_id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Address   string    `db:"address" json:"address"`
	Lat       float64   `db:"lat" json:"lat"`
	Lng       float64   `db:"lng" json:"lng"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
