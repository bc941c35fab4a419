package handler

import (
	"net/http"

	"shopmart/internal/delivery/http/middleware"
	"shopmart/internal/delivery/http/response"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers. Every route is
// scoped to the authenticated user; the cart id never appears in the URL.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authenticated user id missing")
	}

	output, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddProduct puts a product into the cart with quantity 1.
func (h *CartHandler) AddProduct(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authenticated user id missing")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be a UUID")
	}

	output, err := h.uc.AddProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product added to cart")
}

// updateQuantityInput carries the new quantity for a cart line.
type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets the quantity of a product already in the cart.
// Quantity zero removes the line; negative values are rejected downstream.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authenticated user id missing")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be a UUID")
	}

	var input updateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	output, err := h.uc.UpdateQuantity(c.Request().Context(), userID, productID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Cart updated")
}

// RemoveProduct deletes a product's line from the cart.
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authenticated user id missing")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be a UUID")
	}

	output, err := h.uc.RemoveProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product removed from cart")
}
