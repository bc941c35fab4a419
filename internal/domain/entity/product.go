// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. It is treated as an immutable value object by
// the cart and pricing code; attribute changes go through the catalog and
// produce a new value.
type Product struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name      string          // The display name, unique within the catalog.
	ImageURL  string          // URL of the product image shown in cart and receipt views.
	Price     decimal.Decimal // Unit price as an arbitrary-precision decimal. Never a float.
	CreatedAt time.Time       // Timestamp of when this product was created.
	UpdatedAt time.Time       // Timestamp of the last modification to this product.
}
