package usecase

import (
	"context"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineOutput is one cart line rendered for display: decimal amounts as
// strings, never floats.
type CartLineOutput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// CartOutput is the display view of a user's cart.
type CartOutput struct {
	CartID string           `json:"cart_id"`
	Lines  []CartLineOutput `json:"lines"`
	Total  string           `json:"total"`
}

// NewCartOutput maps a cart entity to its display view.
func NewCartOutput(cart *entity.Cart) *CartOutput {
	lines := cart.Lines()
	out := &CartOutput{
		CartID: cart.ID.String(),
		Lines:  make([]CartLineOutput, 0, len(lines)),
	}

	total := decimal.Zero
	for _, line := range lines {
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)

		out.Lines = append(out.Lines, CartLineOutput{
			ProductID: line.Product.ID.String(),
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			UnitPrice: line.Product.Price.String(),
			Quantity:  line.Quantity,
			LineTotal: lineTotal.String(),
		})
	}
	out.Total = total.String()

	return out
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first use.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddProduct puts the product into the cart with quantity 1.
	AddProduct(ctx context.Context, userID, productID uuid.UUID) (*CartOutput, error)

	// UpdateQuantity sets the quantity of a product already in the cart;
	// zero removes the line, negative values are rejected.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartOutput, error)

	// RemoveProduct deletes the product's line from the cart.
	RemoveProduct(ctx context.Context, userID, productID uuid.UUID) (*CartOutput, error)
}
