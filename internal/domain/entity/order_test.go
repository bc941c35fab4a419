package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/internal/errors"

	domainerrors "shopmart/internal/domain/errors"
)

func TestNewOrder_NilCartRejected(t *testing.T) {
	order, err := NewOrder(nil)

	assert.Nil(t, order)
	assert.True(t, errors.Is(errors.Cause(err), domainerrors.ErrEmptyCart))
}

func TestNewOrder_EmptyCartRejected(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())

	order, err := NewOrder(cart)

	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPTY_CART", appErr.ErrorCode())
}

func TestNewOrder_CartEmptiedByZeroUpdateRejected(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 0))

	_, err := NewOrder(cart)

	assert.True(t, errors.Is(errors.Cause(err), domainerrors.ErrEmptyCart))
}

func TestOrder_CalculatePrice_ExactDecimalTotal(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	rice := newTestProduct(t, "rice", "2500")
	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 3))
	cart.AddProduct(rice)

	order, err := NewOrder(cart)
	require.NoError(t, err)

	assert.Equal(t, "5500", order.TotalPrice().String())
	assert.True(t, order.CalculatePrice().Equal(order.TotalPrice()), "recomputation must be idempotent")
}

func TestOrder_CalculatePrice_NoFloatRounding(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	// 0.1 * 3 is the classic binary-float trap; decimals must stay exact.
	gum := newTestProduct(t, "gum", "0.1")
	cart.AddProduct(gum)
	require.NoError(t, cart.UpdateProduct(gum.ID, 3))

	order, err := NewOrder(cart)
	require.NoError(t, err)

	assert.Equal(t, "0.3", order.TotalPrice().String())
}

func TestOrder_SnapshotIsolatedFromCartMutation(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	rice := newTestProduct(t, "rice", "2500")
	cart.AddProduct(soap)
	cart.AddProduct(rice)

	order, err := NewOrder(cart)
	require.NoError(t, err)

	// Mutate the source cart after order construction.
	require.NoError(t, cart.UpdateProduct(soap.ID, 10))
	cart.RemoveProduct(rice.ID)

	assert.Equal(t, "3500", order.TotalPrice().String())
	lines := order.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestOrder_Purchase_Deterministic(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	rice := newTestProduct(t, "rice", "2500")
	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 2))
	cart.AddProduct(rice)

	order, err := NewOrder(cart)
	require.NoError(t, err)

	first := order.Purchase()
	second := order.Purchase()

	assert.Equal(t, first.Lines, second.Lines)
	assert.True(t, first.TotalPrice.Equal(second.TotalPrice))
}

func TestOrder_Purchase_LineContents(t *testing.T) {
	userID := uuid.New()
	cart := NewCart(uuid.New(), userID)
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)
	require.NoError(t, cart.UpdateProduct(soap.ID, 3))

	order, err := NewOrder(cart)
	require.NoError(t, err)

	receipt := order.Purchase()

	assert.Equal(t, userID, receipt.UserID)
	require.Len(t, receipt.Lines, 1)
	line := receipt.Lines[0]
	assert.Equal(t, soap.ID, line.ProductID)
	assert.Equal(t, "soap", line.Name)
	assert.Equal(t, soap.ImageURL, line.ImageURL)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "1000", line.UnitPrice.String())
	assert.Equal(t, "3000", receipt.TotalPrice.String())
}

func TestNewPersistedOrder_CarriesIdentity(t *testing.T) {
	cart := NewCart(uuid.New(), uuid.New())
	soap := newTestProduct(t, "soap", "1000")
	cart.AddProduct(soap)

	id := uuid.New()
	order, err := NewPersistedOrder(id, cart)
	require.NoError(t, err)

	assert.Equal(t, id, order.ID)
	assert.Equal(t, id, order.Purchase().ID)
}
