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
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Checkout is the one
// place where a live cart becomes an immutable receipt.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	eventPublisher service.OrderEventPublisher // optional; nil disables events
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.OrderEventPublisher `optional:"true"`
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the user's cart into a persisted receipt. The order
// insert and the cart clear commit atomically; the order-created event is
// published only after the transaction commits and never fails the checkout.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID) (*usecase.ReceiptOutput, error) {
	var receipt *entity.Receipt
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		orderRepo := repoFactory.NewOrderRepository()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			// No cart at all prices the same as an empty one.
			return domainerrors.ErrEmptyCart.WrapMessage("user has no cart to check out")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load cart for checkout")
		}

		order, err := entity.NewOrder(cart)
		if err != nil {
			return err
		}

		orderID, err := orderRepo.Create(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to persist order")
		}
		order.ID = orderID

		if err := cartRepo.Clear(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		receipt = order.Purchase()

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("userID", userID),
		slog.Any("orderID", receipt.ID),
		slog.String("total", receipt.TotalPrice.String()))

	srv.publishOrderCreated(ctx, receipt)

	return usecase.NewReceiptOutput(receipt), nil
}

// ListReceipts returns the user's receipts, newest first.
func (srv *orderService) ListReceipts(ctx context.Context, userID uuid.UUID) ([]*usecase.ReceiptSummaryOutput, error) {
	receipts, err := srv.orderRepo.FindReceiptsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	outputs := make([]*usecase.ReceiptSummaryOutput, 0, len(receipts))
	for _, receipt := range receipts {
		outputs = append(outputs, usecase.NewReceiptSummaryOutput(receipt))
	}

	return outputs, nil
}

// GetReceipt returns one receipt scoped to its owner.
func (srv *orderService) GetReceipt(ctx context.Context, id, userID uuid.UUID) (*usecase.ReceiptOutput, error) {
	receipt, err := srv.findReceipt(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return usecase.NewReceiptOutput(receipt), nil
}

// ReceiptQR renders a PNG pickup code for one of the user's receipts.
// Ownership is checked the same way as the detail view.
func (srv *orderService) ReceiptQR(ctx context.Context, id, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.findReceipt(ctx, id, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateReceiptQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

func (srv *orderService) findReceipt(ctx context.Context, id, userID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := srv.orderRepo.FindReceiptByIDAndUserID(ctx, id, userID)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return nil, domainerrors.ErrReceiptNotFound.WrapMessage("receipt does not exist for this user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load receipt")
	}

	return receipt, nil
}

// publishOrderCreated emits the order event on a best-effort basis.
func (srv *orderService) publishOrderCreated(ctx context.Context, receipt *entity.Receipt) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.OrderCreatedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    receipt.ID.String(),
		UserID:     receipt.UserID.String(),
		Lines:      make([]service.OrderLineEvent, 0, len(receipt.Lines)),
		TotalPrice: receipt.TotalPrice.String(),
	}
	for _, line := range receipt.Lines {
		event.Lines = append(event.Lines, service.OrderLineEvent{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
		})
	}

	if err := srv.eventPublisher.PublishOrderCreated(ctx, event); err != nil {
		// The order is already committed; an event failure is observability
		// loss, not a checkout failure.
		srv.log(ctx).Error("Failed to publish order created event",
			slog.Any("orderID", receipt.ID), slog.Any("error", err))
	}
}
