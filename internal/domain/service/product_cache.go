package service

import (
	"context"

	"shopmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductCache is a read-through cache in front of the product repository.
// A miss returns (nil, nil); cache failures must degrade to the repository,
// never fail a read.
type ProductCache interface {
	// Get returns the cached product or nil on a miss.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Set stores the product under its id with the configured TTL.
	Set(ctx context.Context, product *entity.Product) error

	// Invalidate drops the cached entry for the given product id.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
