package usecase

import (
	"context"
	"time"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a catalog product.
// Price travels as a decimal string at the boundary.
type CreateProductInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Price    string `json:"price" validate:"required"`
}

// UpdateProductInput defines the modifiable fields of a product.
type UpdateProductInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Price    string `json:"price" validate:"required"`
}

// ProductOutput is the display view of a catalog product.
type ProductOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProductOutput maps a product entity to its display view.
func NewProductOutput(product *entity.Product) *ProductOutput {
	return &ProductOutput{
		ID:        product.ID.String(),
		Name:      product.Name,
		ImageURL:  product.ImageURL,
		Price:     product.Price.String(),
		CreatedAt: product.CreatedAt,
	}
}

// ProductUsecase defines the interface for catalog management operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*ProductOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*ProductOutput, error)
	List(ctx context.Context) ([]*ProductOutput, error)
}
