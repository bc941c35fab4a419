package entity

import (
	"github.com/google/uuid"

	domainerrors "shopmart/internal/domain/errors"
)

// CartLine is a single cart entry: one product and how many of it.
type CartLine struct {
	Product  Product
	Quantity int
}

// Cart holds the products a user intends to buy and their quantities.
// Lines are keyed by product id and kept in insertion order, so snapshots
// iterate deterministically. Every stored line has quantity >= 1; a product
// with quantity zero is removed rather than stored.
//
// Cart is not safe for concurrent use; callers serialize access per user.
type Cart struct {
	ID     uuid.UUID
	UserID uuid.UUID

	lines []CartLine
	index map[uuid.UUID]int // product id -> position in lines
}

// NewCart creates an empty cart for the given user.
func NewCart(id, userID uuid.UUID) *Cart {
	return &Cart{
		ID:     id,
		UserID: userID,
		index:  make(map[uuid.UUID]int),
	}
}

// AddProduct establishes the product's presence in the cart with quantity 1.
// Adding a product that is already present has no effect; quantity changes go
// through UpdateProduct. Reconstruction from storage relies on this add/update
// pairing.
func (c *Cart) AddProduct(product Product) {
	if _, ok := c.index[product.ID]; ok {
		return
	}

	c.index[product.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{Product: product, Quantity: 1})
}

// UpdateProduct sets the quantity for a product already present in the cart.
// A negative quantity is rejected and the cart is left unchanged. A quantity
// of zero removes the line. Updating an absent product reports ErrProductNotFound.
func (c *Cart) UpdateProduct(productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
	}

	pos, ok := c.index[productID]
	if !ok {
		return domainerrors.ErrProductNotFound.WrapMessage("product is not in the cart")
	}

	if quantity == 0 {
		c.removeAt(pos)

		return nil
	}

	c.lines[pos].Quantity = quantity

	return nil
}

// RemoveProduct deletes the product's line from the cart. Removing an absent
// product is a no-op.
func (c *Cart) RemoveProduct(productID uuid.UUID) {
	pos, ok := c.index[productID]
	if !ok {
		return
	}

	c.removeAt(pos)
}

// IsEmpty reports whether the cart has no line with a positive quantity.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a defensive snapshot of the cart's lines in insertion order.
// Callers never observe later cart mutation through the returned slice.
func (c *Cart) Lines() []CartLine {
	snapshot := make([]CartLine, len(c.lines))
	copy(snapshot, c.lines)

	return snapshot
}

// Quantity returns the quantity for the given product id and whether the
// product is present.
func (c *Cart) Quantity(productID uuid.UUID) (int, bool) {
	pos, ok := c.index[productID]
	if !ok {
		return 0, false
	}

	return c.lines[pos].Quantity, true
}

// removeAt deletes the line at pos, preserving the insertion order of the
// remaining lines.
func (c *Cart) removeAt(pos int) {
	delete(c.index, c.lines[pos].Product.ID)
	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)

	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].Product.ID] = i
	}
}
