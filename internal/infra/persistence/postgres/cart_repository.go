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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// GetOrCreateByUserID returns the user's cart, creating an empty one if none
// exists yet. The insert tolerates conflicts on the user_id unique index, so
// two racing first-time calls both end up reading the same row.
func (repo *cartRepository) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cartM := &model.CartModel{UserID: userID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cartM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	// Re-fetch unconditionally: on conflict the generated ID above is not
	// the one that won the race.
	cart, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart after create")
	}

	return cart, nil
}

// FindByUserID returns the user's cart with its lines fully resolved against
// the current catalog.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		First(&cartM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return repo.toCartDomain(ctx, &cartM)
}

// Save replaces the stored line rows with the cart's current lines. The
// delete and re-insert happen in one transaction so a reader never observes a
// half-written cart.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	lines := cart.Lines()

	itemsM := make([]model.CartItemModel, 0, len(lines))
	for position, line := range lines {
		itemsM = append(itemsM, model.CartItemModel{
			CartID:    cart.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Position:  position,
		})
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart lines")
		}
		if len(itemsM) == 0 {
			return nil
		}
		if err := tx.Create(&itemsM).Error; err != nil {
			return errors.Wrap(err, "failed to insert cart lines")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// Clear removes all line rows of the cart, keeping the cart row itself.
func (repo *cartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// toCartDomain rebuilds the cart aggregate from its stored rows, resolving
// product data in one batch query. Lines whose product has since been removed
// from the catalog are dropped rather than surfaced as phantom entries.
func (repo *cartRepository) toCartDomain(ctx context.Context, cartM *model.CartModel) (*entity.Cart, error) {
	cart := entity.NewCart(cartM.ID, cartM.UserID)
	if len(cartM.Items) == 0 {
		return cart, nil
	}

	ids := make([]uuid.UUID, 0, len(cartM.Items))
	for _, item := range cartM.Items {
		ids = append(ids, item.ProductID)
	}

	var productsM []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cart products")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(productsM))
	for i := range productsM {
		product := toProductDomain(&productsM[i])
		productsByID[product.ID] = product
	}

	for _, item := range cartM.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}

		cart.AddProduct(*product)
		if item.Quantity != 1 {
			if err := cart.UpdateProduct(product.ID, item.Quantity); err != nil {
				return nil, errors.Wrap(err, "failed to rebuild cart line")
			}
		}
	}

	return cart, nil
}
