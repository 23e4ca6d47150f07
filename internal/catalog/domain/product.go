package domain

import "time"

// Product is one catalog entry. It is served to clients as-is, so the json
// tags are part of the API surface.
type Product struct {
	ID          string    `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	PriceCents  int64     `db:"price_cents" json:"price_cents"`
	Quantity    int64     `db:"quantity"    json:"quantity"`
	CreatedBy   string    `db:"created_by"  json:"created_by"` // account id of the creator
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}
