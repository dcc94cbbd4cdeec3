package domain

import "time"

// Meta carries the identity and audit columns shared by catalog records.
type Meta struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultCurrency is applied to priced records that omit a currency.
const DefaultCurrency = "SAR"
