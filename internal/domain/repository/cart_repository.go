package repository

import (
	"context"
	"errors"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is a domain-specific error returned when a cart is not found.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the operations for cart persistence. A user owns at
// most one cart; GetOrCreateByUserID must uphold that even under concurrent
// first-time calls (unique constraint on user id, conflict-tolerant insert).
type CartRepository interface {
	// GetOrCreateByUserID returns the user's cart, creating an empty one if
	// none exists yet. Concurrent calls for the same user collapse to a
	// single cart row.
	GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserID returns the user's cart with its lines fully resolved, or
	// ErrCartNotFound when the user has no cart.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save replaces the stored line rows with the cart's current lines.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes all line rows of the cart, keeping the cart row itself.
	Clear(ctx context.Context, cartID uuid.UUID) error
}
