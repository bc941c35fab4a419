package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopmart/internal/delivery/context"
	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	"shopmart/internal/domain/service"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	productCache service.ProductCache // optional; nil disables caching
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ProductCache service.ProductCache `optional:"true"`
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		productCache: params.ProductCache,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// parsePrice converts the boundary decimal string into the domain price type.
// The catalog is the single place that rejects non-positive prices; the
// pricing engine downstream trusts them.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domainerrors.ErrInvalidPrice.WrapMessage("price is not a valid decimal")
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, domainerrors.ErrInvalidPrice.WrapMessage("price must be greater than zero")
	}

	return price, nil
}

// Create adds a product to the catalog. A duplicate name is rejected.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	_, err = srv.productRepo.FindByName(ctx, input.Name)
	if err == nil {
		return nil, domainerrors.ErrProductAlreadyExists.WrapMessage("product name already taken")
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to check product name")
	}

	product := &entity.Product{
		Name:     input.Name,
		ImageURL: input.ImageURL,
		Price:    price,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return usecase.NewProductOutput(product), nil
}

// Update modifies a product and drops its cached copy.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*usecase.ProductOutput, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot update unknown product")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for update")
	}

	product.Name = input.Name
	product.ImageURL = input.ImageURL
	product.Price = price

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidateCache(ctx, id)

	return usecase.NewProductOutput(product), nil
}

// Delete removes a product from the catalog and drops its cached copy.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("cannot delete unknown product")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidateCache(ctx, id)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// Get returns one product, trying the cache before the repository.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*usecase.ProductOutput, error) {
	if srv.productCache != nil {
		cached, err := srv.productCache.Get(ctx, id)
		if err != nil {
			// Cache trouble degrades to the repository.
			srv.log(ctx).Warn("Product cache read failed", slog.Any("productID", id), slog.Any("error", err))
		} else if cached != nil {
			return usecase.NewProductOutput(cached), nil
		}
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	if srv.productCache != nil {
		if err := srv.productCache.Set(ctx, product); err != nil {
			srv.log(ctx).Warn("Product cache write failed", slog.Any("productID", id), slog.Any("error", err))
		}
	}

	return usecase.NewProductOutput(product), nil
}

// List returns the whole catalog ordered by creation time.
func (srv *productService) List(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, usecase.NewProductOutput(product))
	}

	return outputs, nil
}

func (srv *productService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if srv.productCache == nil {
		return
	}
	if err := srv.productCache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Any("productID", id), slog.Any("error", err))
	}
}
