package postgres

import (
	"context"

	"shopmart/internal/domain/entity"
	domainerrors "shopmart/internal/domain/errors"
	"shopmart/internal/domain/repository"
	"shopmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its priced line rows, returning the assigned
// order id. Line rows snapshot the product name, image and unit price so the
// receipt survives catalog edits.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) (uuid.UUID, error) {
	lines := order.Lines()

	orderM := &model.OrderModel{
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice(),
		Items:      make([]model.OrderItemModel, 0, len(lines)),
	}
	for position, line := range lines {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			Position:  position,
		})
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return uuid.Nil, domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return orderM.ID, nil
}

// FindReceiptsByUserID lists the user's receipts, newest first.
func (repo *orderRepository) FindReceiptsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	var ordersM []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	receipts := make([]*entity.Receipt, 0, len(ordersM))
	for i := range ordersM {
		receipts = append(receipts, toReceiptDomain(&ordersM[i]))
	}

	return receipts, nil
}

// FindReceiptByIDAndUserID retrieves one receipt scoped to its owner. A
// receipt belonging to another user reports ErrReceiptNotFound rather than
// leaking its existence.
func (repo *orderRepository) FindReceiptByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*entity.Receipt, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt")
	}

	return toReceiptDomain(&orderM), nil
}

// --- Mapper Functions ---

// toReceiptDomain converts a GORM OrderModel to a domain Receipt entity.
func toReceiptDomain(data *model.OrderModel) *entity.Receipt {
	if data == nil {
		return nil
	}

	lines := make([]entity.ReceiptLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, entity.ReceiptLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Receipt{
		ID:         data.ID,
		UserID:     data.UserID,
		Lines:      lines,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
	}
}
