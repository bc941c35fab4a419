package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "shopmart/internal/domain/errors"
)

// Order is the priced result of checking out a cart. Construction validates
// the cart, copies its lines into a private snapshot and computes the total
// eagerly, so later mutation of the source cart never changes the order.
type Order struct {
	ID     uuid.UUID // Zero until the order has been persisted.
	UserID uuid.UUID

	lines      []CartLine
	totalPrice decimal.Decimal
	createdAt  time.Time
}

// NewOrder builds an order from a cart snapshot. A nil or empty cart is
// rejected with ErrEmptyCart; this is the single gate against zero-item
// checkout.
func NewOrder(cart *Cart) (*Order, error) {
	return NewPersistedOrder(uuid.Nil, cart)
}

// NewPersistedOrder builds an order carrying an already assigned identity,
// used when reconstructing an order from storage. Validation and pricing are
// identical to NewOrder.
func NewPersistedOrder(id uuid.UUID, cart *Cart) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("order requires a non-empty cart")
	}

	order := &Order{
		ID:        id,
		UserID:    cart.UserID,
		lines:     cart.Lines(),
		createdAt: time.Now().UTC(),
	}
	order.totalPrice = order.CalculatePrice()

	return order, nil
}

// CalculatePrice folds unitPrice * quantity over the snapshot lines in
// insertion order. It is idempotent and side-effect free: the same snapshot
// always yields the same total. Unit prices are trusted here; the catalog
// rejects non-positive prices before they ever reach an order.
func (o *Order) CalculatePrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return total
}

// TotalPrice returns the total computed at construction time.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Lines returns a copy of the order's line snapshot in insertion order.
func (o *Order) Lines() []CartLine {
	lines := make([]CartLine, len(o.lines))
	copy(lines, o.lines)

	return lines
}

// CreatedAt returns the construction timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Purchase produces the immutable receipt for this order. It is a pure
// function of the order's already computed state: calling it twice yields
// value-equal receipts.
func (o *Order) Purchase() *Receipt {
	lines := make([]ReceiptLine, 0, len(o.lines))
	for _, line := range o.lines {
		lines = append(lines, ReceiptLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			ImageURL:  line.Product.ImageURL,
			Quantity:  line.Quantity,
		})
	}

	return &Receipt{
		ID:         o.ID,
		UserID:     o.UserID,
		Lines:      lines,
		TotalPrice: o.totalPrice,
		CreatedAt:  o.createdAt,
	}
}
