package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	mockRepo "shopmart/internal/mocks/repository"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, name, price string) entity.Product {
	t.Helper()

	parsed, err := decimal.NewFromString(price)
	require.NoError(t, err)

	return entity.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: parsed,
	}
}

func newCartServiceForTest(t *testing.T, cartRepo repository.CartRepository, productRepo repository.ProductRepository) usecase.CartUsecase {
	t.Helper()

	return NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})
}

func TestCartService_GetCartCreatesOnFirstUse(t *testing.T) {
	userID := uuid.New()
	cart := entity.NewCart(uuid.New(), userID)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().GetOrCreateByUserID(mock.Anything, userID).Return(cart, nil)

	svc := newCartServiceForTest(t, cartRepo, mockRepo.NewMockProductRepository(t))

	output, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID.String(), output.CartID)
	assert.Empty(t, output.Lines)
	assert.Equal(t, "0", output.Total)
}

func TestCartService_AddProduct(t *testing.T) {
	userID := uuid.New()
	product := testProduct(t, "Apple", "1000")
	cart := entity.NewCart(uuid.New(), userID)

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(&product, nil)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().GetOrCreateByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

	svc := newCartServiceForTest(t, cartRepo, productRepo)

	output, err := svc.AddProduct(context.Background(), userID, product.ID)
	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, product.ID.String(), output.Lines[0].ProductID)
	assert.Equal(t, 1, output.Lines[0].Quantity)
	assert.Equal(t, "1000", output.Total)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	productID := uuid.New()

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	svc := newCartServiceForTest(t, mockRepo.NewMockCartRepository(t), productRepo)

	_, err := svc.AddProduct(context.Background(), uuid.New(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	userID := uuid.New()
	product := testProduct(t, "Apple", "1000")
	cart := entity.NewCart(uuid.New(), userID)
	cart.AddProduct(product)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

	svc := newCartServiceForTest(t, cartRepo, mockRepo.NewMockProductRepository(t))

	output, err := svc.UpdateQuantity(context.Background(), userID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, 3, output.Lines[0].Quantity)
	assert.Equal(t, "3000", output.Total)
}

func TestCartService_UpdateQuantityRejectsNegative(t *testing.T) {
	userID := uuid.New()
	product := testProduct(t, "Apple", "1000")
	cart := entity.NewCart(uuid.New(), userID)
	cart.AddProduct(product)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)

	svc := newCartServiceForTest(t, cartRepo, mockRepo.NewMockProductRepository(t))

	// The cart is never saved when the domain rejects the quantity.
	_, err := svc.UpdateQuantity(context.Background(), userID, product.ID, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_UpdateQuantityWithoutCart(t *testing.T) {
	userID := uuid.New()

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

	svc := newCartServiceForTest(t, cartRepo, mockRepo.NewMockProductRepository(t))

	_, err := svc.UpdateQuantity(context.Background(), userID, uuid.New(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartService_RemoveProduct(t *testing.T) {
	userID := uuid.New()
	product := testProduct(t, "Apple", "1000")
	cart := entity.NewCart(uuid.New(), userID)
	cart.AddProduct(product)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

	svc := newCartServiceForTest(t, cartRepo, mockRepo.NewMockProductRepository(t))

	output, err := svc.RemoveProduct(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, output.Lines)
}

func TestCartService_SerializesMutationsPerUser(t *testing.T) {
	const workers = 16

	userID := uuid.New()
	product := testProduct(t, "Apple", "1000")

	var inFlight atomic.Int32
	var maxInFlight atomic.Int32

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(&product, nil)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().GetOrCreateByUserID(mock.Anything, userID).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				prev := maxInFlight.Load()
				if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
					break
				}
			}

			return entity.NewCart(uuid.New(), id), nil
		})
	cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	svc := newCartServiceForTest(t, cartRepo, productRepo)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddProduct(context.Background(), userID, product.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// The per-user lock must keep the read-modify-write critical section
	// single-file for one user.
	assert.Equal(t, int32(1), maxInFlight.Load())
}
