package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "shopmart/internal/delivery/context"
	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// Cart mutations are read-modify-write cycles, so the service serializes them
// per user with a lock keyed by user id. The Postgres repository additionally
// enforces the one-cart-per-user invariant with a unique constraint, which
// covers concurrent first-time calls across processes.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger

	userLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// lockUser acquires the per-user mutex and returns its unlock function.
func (srv *cartService) lockUser(userID uuid.UUID) func() {
	val, _ := srv.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

// GetCart returns the user's cart, creating an empty one on first use.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	unlock := srv.lockUser(userID)
	defer unlock()

	cart, err := srv.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create cart")
	}

	return usecase.NewCartOutput(cart), nil
}

// AddProduct puts the product into the cart with quantity 1. Adding a product
// that is already present leaves its quantity untouched.
func (srv *cartService) AddProduct(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add unknown product to cart")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for cart add")
	}

	unlock := srv.lockUser(userID)
	defer unlock()

	cart, err := srv.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create cart")
	}

	cart.AddProduct(*product)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart after add")
	}

	srv.log(ctx).Debug("Product added to cart",
		slog.Any("userID", userID), slog.Any("productID", productID))

	return usecase.NewCartOutput(cart), nil
}

// UpdateQuantity sets the quantity of a product already in the cart.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	unlock := srv.lockUser(userID)
	defer unlock()

	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.UpdateProduct(productID, quantity); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart after quantity update")
	}

	srv.log(ctx).Debug("Cart quantity updated",
		slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return usecase.NewCartOutput(cart), nil
}

// RemoveProduct deletes the product's line from the cart.
func (srv *cartService) RemoveProduct(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartOutput, error) {
	unlock := srv.lockUser(userID)
	defer unlock()

	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveProduct(productID)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart after remove")
	}

	return usecase.NewCartOutput(cart), nil
}

// findCart loads an existing cart, mapping a missing cart to the domain error.
func (srv *cartService) findCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound.WrapMessage("user has no cart yet")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}
