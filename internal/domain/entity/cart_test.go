package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/internal/errors"

	domainerrors "shopmart/internal/domain/errors"
)

func newTestProduct(t *testing.T, name, price string) Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	return Product{
		ID:       uuid.New(),
		Name:     name,
		ImageURL: "https://img.example.com/" + name + ".png",
		Price:    p,
	}
}

func TestCart_AddProduct_EstablishesPresenceWithQuantityOne(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")

	cart.AddProduct(soap)

	qty, ok := cart.Quantity(soap.ID)
	require.True(t, ok)
	assert.Equal(t, 1, qty)
	assert.False(t, cart.IsEmpty())
}

func TestCart_AddProduct_DuplicateAddIsNoOp(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")

	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 5))

	// A second add must not reset the quantity.
	cart.AddProduct(soap)

	qty, ok := cart.Quantity(soap.ID)
	require.True(t, ok)
	assert.Equal(t, 5, qty)
	assert.Equal(t, 1, cart.Len())
}

func TestCart_UpdateProduct_NegativeQuantityRejectedWithoutMutation(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 3))

	err := cart.UpdateProduct(soap.ID, -1)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QUANTITY", appErr.ErrorCode())

	qty, ok := cart.Quantity(soap.ID)
	require.True(t, ok)
	assert.Equal(t, 3, qty, "failed update must leave the cart unchanged")
}

func TestCart_UpdateProduct_ZeroQuantityRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)

	require.NoError(t, cart.UpdateProduct(soap.ID, 0))

	assert.True(t, cart.IsEmpty())
	_, ok := cart.Quantity(soap.ID)
	assert.False(t, ok)
}

func TestCart_UpdateProduct_AbsentProduct(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())

	err := cart.UpdateProduct(uuid.New(), 2)

	assert.True(t, errors.Is(errors.Cause(err), domainerrors.ErrProductNotFound))
}

func TestCart_RemoveProduct_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	rice := newTestProduct(t, "rice", "2500")
	milk := newTestProduct(t, "milk", "1800")

	cart.AddProduct(soap)
	cart.AddProduct(rice)
	cart.AddProduct(milk)

	cart.RemoveProduct(rice.ID)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, soap.ID, lines[0].Product.ID)
	assert.Equal(t, milk.ID, lines[1].Product.ID)

	// Index must stay consistent after the shift.
	require.NoError(t, cart.UpdateProduct(milk.ID, 4))
	qty, ok := cart.Quantity(milk.ID)
	require.True(t, ok)
	assert.Equal(t, 4, qty)
}

func TestCart_Lines_IsDefensiveSnapshot(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)

	snapshot := cart.Lines()
	require.NoError(t, cart.UpdateProduct(soap.ID, 7))

	assert.Equal(t, 1, snapshot[0].Quantity, "snapshot must not observe later cart mutation")
}
