package impl

import (
	"context"
	"testing"

	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	"shopmart/internal/domain/service"
	mockRepo "shopmart/internal/mocks/repository"
	mockService "shopmart/internal/mocks/service"
	"shopmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest(t *testing.T, productRepo repository.ProductRepository, productCache service.ProductCache) usecase.ProductUsecase {
	t.Helper()

	return NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		ProductCache: productCache,
		Logger:       testLogger(),
	})
}

func TestProductService_Create(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByName(mock.Anything, "Apple").Return(nil, repository.ErrProductNotFound)

	generatedID := uuid.New()
	productRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.Equal(t, "Apple", product.Name)
			assert.Equal(t, "1000", product.Price.String())
			product.ID = generatedID
			return nil
		})

	svc := newProductServiceForTest(t, productRepo, nil)

	output, err := svc.Create(context.Background(), &usecase.CreateProductInput{
		Name:  "Apple",
		Price: "1000",
	})
	require.NoError(t, err)
	assert.Equal(t, generatedID.String(), output.ID)
	assert.Equal(t, "1000", output.Price)
}

func TestProductService_CreateRejectsBadPrice(t *testing.T) {
	svc := newProductServiceForTest(t, mockRepo.NewMockProductRepository(t), nil)

	for _, price := range []string{"", "abc", "0", "-5"} {
		_, err := svc.Create(context.Background(), &usecase.CreateProductInput{
			Name:  "Apple",
			Price: price,
		})
		require.Error(t, err, "price %q", price)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice), "price %q", price)
	}
}

func TestProductService_CreateDuplicateName(t *testing.T) {
	existing := testProduct(t, "Apple", "1000")

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByName(mock.Anything, "Apple").Return(&existing, nil)

	svc := newProductServiceForTest(t, productRepo, nil)

	_, err := svc.Create(context.Background(), &usecase.CreateProductInput{
		Name:  "Apple",
		Price: "1200",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))
}

func TestProductService_GetCacheHit(t *testing.T) {
	product := testProduct(t, "Apple", "1000")

	productCache := mockService.NewMockProductCache(t)
	productCache.EXPECT().Get(mock.Anything, product.ID).Return(&product, nil)

	// The repository is never consulted on a cache hit.
	svc := newProductServiceForTest(t, mockRepo.NewMockProductRepository(t), productCache)

	output, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID.String(), output.ID)
}

func TestProductService_GetCacheMissFillsCache(t *testing.T) {
	product := testProduct(t, "Apple", "1000")

	productCache := mockService.NewMockProductCache(t)
	productCache.EXPECT().Get(mock.Anything, product.ID).Return(nil, nil)
	productCache.EXPECT().Set(mock.Anything, &product).Return(nil)

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(&product, nil)

	svc := newProductServiceForTest(t, productRepo, productCache)

	output, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, output.Name)
}

func TestProductService_GetDegradesOnCacheError(t *testing.T) {
	product := testProduct(t, "Apple", "1000")

	productCache := mockService.NewMockProductCache(t)
	productCache.EXPECT().Get(mock.Anything, product.ID).Return(nil, errors.New("redis down"))
	productCache.EXPECT().Set(mock.Anything, &product).Return(errors.New("redis down"))

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(&product, nil)

	svc := newProductServiceForTest(t, productRepo, productCache)

	output, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID.String(), output.ID)
}

func TestProductService_GetUnknownProduct(t *testing.T) {
	productID := uuid.New()

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	svc := newProductServiceForTest(t, productRepo, nil)

	_, err := svc.Get(context.Background(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	product := testProduct(t, "Apple", "1000")

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(&product, nil)
	productRepo.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, updated *entity.Product) error {
			assert.Equal(t, "Green Apple", updated.Name)
			assert.Equal(t, "1100", updated.Price.String())
			return nil
		})

	productCache := mockService.NewMockProductCache(t)
	productCache.EXPECT().Invalidate(mock.Anything, product.ID).Return(nil)

	svc := newProductServiceForTest(t, productRepo, productCache)

	output, err := svc.Update(context.Background(), product.ID, &usecase.UpdateProductInput{
		Name:  "Green Apple",
		Price: "1100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Apple", output.Name)
	assert.Equal(t, "1100", output.Price)
}

func TestProductService_UpdateUnknownProduct(t *testing.T) {
	productID := uuid.New()

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	svc := newProductServiceForTest(t, productRepo, nil)

	_, err := svc.Update(context.Background(), productID, &usecase.UpdateProductInput{
		Name:  "Ghost",
		Price: "1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteInvalidatesCache(t *testing.T) {
	productID := uuid.New()

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().Delete(mock.Anything, productID).Return(nil)

	productCache := mockService.NewMockProductCache(t)
	productCache.EXPECT().Invalidate(mock.Anything, productID).Return(nil)

	svc := newProductServiceForTest(t, productRepo, productCache)

	require.NoError(t, svc.Delete(context.Background(), productID))
}

func TestProductService_DeleteUnknownProduct(t *testing.T) {
	productID := uuid.New()

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().Delete(mock.Anything, productID).Return(repository.ErrProductNotFound)

	svc := newProductServiceForTest(t, productRepo, nil)

	err := svc.Delete(context.Background(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_List(t *testing.T) {
	first := testProduct(t, "Apple", "1000")
	second := testProduct(t, "Banana", "500")

	productRepo := mockRepo.NewMockProductRepository(t)
	productRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Product{&first, &second}, nil)

	svc := newProductServiceForTest(t, productRepo, nil)

	outputs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Apple", outputs[0].Name)
	assert.Equal(t, "Banana", outputs[1].Name)
}
