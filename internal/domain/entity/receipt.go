package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptLine is one purchased line item, priced at purchase time.
type ReceiptLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Quantity  int
}

// Receipt is the read-only record of a completed purchase. It never changes
// after creation and holds no reference back to the live cart.
type Receipt struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Lines      []ReceiptLine
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
