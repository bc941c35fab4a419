package usecase

import (
	"context"
	"time"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceiptLineOutput is one purchased line rendered for display.
type ReceiptLineOutput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// ReceiptOutput is the detail view of a receipt.
type ReceiptOutput struct {
	ID         string              `json:"id"`
	Lines      []ReceiptLineOutput `json:"lines"`
	TotalPrice string              `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ReceiptSummaryOutput is the list view of a receipt.
type ReceiptSummaryOutput struct {
	ID         string    `json:"id"`
	TotalPrice string    `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReceiptOutput maps a receipt entity to its detail view.
func NewReceiptOutput(receipt *entity.Receipt) *ReceiptOutput {
	out := &ReceiptOutput{
		ID:         receipt.ID.String(),
		Lines:      make([]ReceiptLineOutput, 0, len(receipt.Lines)),
		TotalPrice: receipt.TotalPrice.String(),
		CreatedAt:  receipt.CreatedAt,
	}

	for _, line := range receipt.Lines {
		out.Lines = append(out.Lines, ReceiptLineOutput{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			ImageURL:  line.ImageURL,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
		})
	}

	return out
}

// NewReceiptSummaryOutput maps a receipt entity to its list view.
func NewReceiptSummaryOutput(receipt *entity.Receipt) *ReceiptSummaryOutput {
	return &ReceiptSummaryOutput{
		ID:         receipt.ID.String(),
		TotalPrice: receipt.TotalPrice.String(),
		ItemCount:  len(receipt.Lines),
		CreatedAt:  receipt.CreatedAt,
	}
}

// OrderUsecase defines the interface for checkout and receipt operations.
type OrderUsecase interface {
	// Checkout converts the user's cart into a persisted, priced receipt.
	// The order insert and the cart clear run in one transaction.
	Checkout(ctx context.Context, userID uuid.UUID) (*ReceiptOutput, error)

	// ListReceipts returns the user's receipts, newest first.
	ListReceipts(ctx context.Context, userID uuid.UUID) ([]*ReceiptSummaryOutput, error)

	// GetReceipt returns one receipt scoped to its owner.
	GetReceipt(ctx context.Context, id, userID uuid.UUID) (*ReceiptOutput, error)

	// ReceiptQR renders a PNG pickup code for one of the user's receipts.
	ReceiptQR(ctx context.Context, id, userID uuid.UUID) ([]byte, error)
}
