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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest(t *testing.T, params OrderServiceParams) usecase.OrderUsecase {
	t.Helper()

	if params.Logger == nil {
		params.Logger = testLogger()
	}
	if params.QRService == nil {
		params.QRService = mockService.NewMockQRCodeService(t)
	}

	return NewOrderService(params)
}

func checkoutCart(t *testing.T, userID uuid.UUID) *entity.Cart {
	t.Helper()

	cart := entity.NewCart(uuid.New(), userID)
	cart.AddProduct(testProduct(t, "Apple", "1000"))
	cart.AddProduct(testProduct(t, "Banana", "500"))
	require.NoError(t, cart.UpdateProduct(cart.Lines()[0].Product.ID, 2))

	return cart
}

func TestOrderService_Checkout(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	cart := checkoutCart(t, userID)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Clear(mock.Anything, cart.ID).Return(nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, order *entity.Order) (uuid.UUID, error) {
			assert.Equal(t, userID, order.UserID)
			assert.Equal(t, "2500", order.TotalPrice().String())
			return orderID, nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	publisher := mockService.NewMockOrderEventPublisher(t)
	publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.OrderCreatedEvent) error {
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "2500", event.TotalPrice)
			assert.Len(t, event.Lines, 2)
			return nil
		})

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager:      passthroughTxManager(t, factory),
		OrderRepo:      mockRepo.NewMockOrderRepository(t),
		EventPublisher: publisher,
	})

	receipt, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, orderID.String(), receipt.ID)
	assert.Equal(t, "2500", receipt.TotalPrice)
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Apple", receipt.Lines[0].Name)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
}

func TestOrderService_CheckoutWithoutCart(t *testing.T) {
	userID := uuid.New()

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: passthroughTxManager(t, factory),
		OrderRepo: mockRepo.NewMockOrderRepository(t),
	})

	_, err := svc.Checkout(context.Background(), userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	userID := uuid.New()
	cart := entity.NewCart(uuid.New(), userID)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: passthroughTxManager(t, factory),
		OrderRepo: mockRepo.NewMockOrderRepository(t),
	})

	_, err := svc.Checkout(context.Background(), userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CheckoutSurvivesPublishFailure(t *testing.T) {
	userID := uuid.New()
	cart := checkoutCart(t, userID)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Clear(mock.Anything, cart.ID).Return(nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(uuid.New(), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	publisher := mockService.NewMockOrderEventPublisher(t)
	publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager:      passthroughTxManager(t, factory),
		OrderRepo:      mockRepo.NewMockOrderRepository(t),
		EventPublisher: publisher,
	})

	// The order is already committed when publishing happens.
	receipt, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "2500", receipt.TotalPrice)
}

func TestOrderService_CheckoutWithoutPublisher(t *testing.T) {
	userID := uuid.New()
	cart := checkoutCart(t, userID)

	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil)
	cartRepo.EXPECT().Clear(mock.Anything, cart.ID).Return(nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(uuid.New(), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: passthroughTxManager(t, factory),
		OrderRepo: mockRepo.NewMockOrderRepository(t),
	})

	_, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)
}

func storedReceipt(userID uuid.UUID) *entity.Receipt {
	return &entity.Receipt{
		ID:     uuid.New(),
		UserID: userID,
		Lines: []entity.ReceiptLine{{
			ProductID: uuid.New(),
			Name:      "Apple",
			UnitPrice: decimal.NewFromInt(1000),
			Quantity:  2,
		}},
		TotalPrice: decimal.NewFromInt(2000),
	}
}

func TestOrderService_ListReceipts(t *testing.T) {
	userID := uuid.New()
	receipt := storedReceipt(userID)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().FindReceiptsByUserID(mock.Anything, userID).Return([]*entity.Receipt{receipt}, nil)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
	})

	outputs, err := svc.ListReceipts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, receipt.ID.String(), outputs[0].ID)
	assert.Equal(t, "2000", outputs[0].TotalPrice)
	assert.Equal(t, 1, outputs[0].ItemCount)
}

func TestOrderService_GetReceipt(t *testing.T) {
	userID := uuid.New()
	receipt := storedReceipt(userID)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().FindReceiptByIDAndUserID(mock.Anything, receipt.ID, userID).Return(receipt, nil)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
	})

	output, err := svc.GetReceipt(context.Background(), receipt.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, receipt.ID.String(), output.ID)
	require.Len(t, output.Lines, 1)
	assert.Equal(t, "1000", output.Lines[0].UnitPrice)
}

func TestOrderService_GetReceiptWrongOwner(t *testing.T) {
	receiptID := uuid.New()
	otherUser := uuid.New()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().FindReceiptByIDAndUserID(mock.Anything, receiptID, otherUser).
		Return(nil, repository.ErrReceiptNotFound)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
	})

	// Another user's receipt looks exactly like a missing one.
	_, err := svc.GetReceipt(context.Background(), receiptID, otherUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
}

func TestOrderService_ReceiptQR(t *testing.T) {
	userID := uuid.New()
	receipt := storedReceipt(userID)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().FindReceiptByIDAndUserID(mock.Anything, receipt.ID, userID).Return(receipt, nil)

	qrService := mockService.NewMockQRCodeService(t)
	qrService.EXPECT().GenerateReceiptQR(receipt.ID).Return([]byte("png-bytes"), nil)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
		QRService: qrService,
	})

	png, err := svc.ReceiptQR(context.Background(), receipt.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_ReceiptQRUnknownReceipt(t *testing.T) {
	receiptID := uuid.New()
	userID := uuid.New()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().FindReceiptByIDAndUserID(mock.Anything, receiptID, userID).
		Return(nil, repository.ErrReceiptNotFound)

	svc := newOrderServiceForTest(t, OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
	})

	_, err := svc.ReceiptQR(context.Background(), receiptID, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
}
