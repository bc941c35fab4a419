package repository

import (
	"context"
	"errors"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReceiptNotFound is a domain-specific error returned when a receipt is not found.
var ErrReceiptNotFound = errors.New("receipt not found")

// OrderRepository is the persistence sink for completed orders and the query
// surface for their receipts.
type OrderRepository interface {
	// Create persists the order and its priced line rows, returning the
	// assigned order id.
	Create(ctx context.Context, order *entity.Order) (uuid.UUID, error)

	// FindReceiptsByUserID lists the user's receipts, newest first.
	FindReceiptsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error)

	// FindReceiptByIDAndUserID retrieves one receipt scoped to its owner;
	// a receipt belonging to another user reports ErrReceiptNotFound.
	FindReceiptByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*entity.Receipt, error)
}
