package ledger

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
	apperrors "github.com/Zeta-Slow/Industry-Tools/pkg/errors"
)

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	// Category matches the item category exactly.
	Category string
	// Text matches code, description or category, case-insensitive substring.
	Text string
}

// TransactionQuery bounds a movement history listing.
type TransactionQuery struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

// TransactionRecord is a movement row joined with its item's identity, used
// by history views and report exports.
type TransactionRecord struct {
	models.StockTransaction
	ItemCode        string `gorm:"column:item_code"`
	ItemDescription string `gorm:"column:item_description"`
}

// Repository is the persistence surface for items and their movement ledger.
type Repository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) Repository

	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	// DeleteItem removes the item and (via cascade) its transactions. It
	// reports whether a row was actually deleted.
	DeleteItem(ctx context.Context, id uuid.UUID) (bool, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItemByCode(ctx context.Context, code string) (*models.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	// ListLowStock returns items at or below their minimum quantity. When
	// threshold is set it overrides the per-item minimum.
	ListLowStock(ctx context.Context, threshold *int) ([]models.Item, error)

	CreateTransaction(ctx context.Context, txn *models.StockTransaction) error
	// ApplyQuantityDelta adjusts the cached quantity of an item in place.
	ApplyQuantityDelta(ctx context.Context, itemID uuid.UUID, delta int) error
	ListTransactions(ctx context.Context, itemID uuid.UUID, query TransactionQuery) ([]models.StockTransaction, error)
	ListAllTransactions(ctx context.Context, query TransactionQuery) ([]TransactionRecord, error)
}

type gormRepository struct {
	conn *gorm.DB
}

// NewRepository builds the GORM-backed repository over the shared client.
func NewRepository(client *db.Client) Repository {
	return &gormRepository{conn: client.DB()}
}

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{conn: tx}
}

func (r *gormRepository) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := r.conn.WithContext(ctx).Create(item).Error; err != nil {
		if db.IsUniqueViolation(err, "items.code") {
			return apperrors.Wrap(apperrors.CodeDuplicateCode, err, "item code already exists").
				WithDetails(map[string]string{"code": item.Code})
		}
		return apperrors.Wrap(apperrors.CodeStorage, err, "creating item")
	}
	return nil
}

func (r *gormRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"code":         item.Code,
			"description":  item.Description,
			"category":     item.Category,
			"supplier":     item.Supplier,
			"unit_cost":    item.UnitCost,
			"sale_price":   item.SalePrice,
			"min_quantity": item.MinQuantity,
		})
	if result.Error != nil {
		if db.IsUniqueViolation(result.Error, "items.code") {
			return apperrors.Wrap(apperrors.CodeDuplicateCode, result.Error, "item code already exists").
				WithDetails(map[string]string{"code": item.Code})
		}
		return apperrors.Wrap(apperrors.CodeStorage, result.Error, "updating item")
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "item not found").
			WithDetails(map[string]string{"id": item.ID.String()})
	}
	return nil
}

func (r *gormRepository) DeleteItem(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.conn.WithContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.CodeStorage, result.Error, "deleting item")
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.conn.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "fetching item")
	}
	return &item, nil
}

func (r *gormRepository) GetItemByCode(ctx context.Context, code string) (*models.Item, error) {
	var item models.Item
	err := r.conn.WithContext(ctx).Where("code = ?", code).First(&item).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "fetching item by code")
	}
	return &item, nil
}

func (r *gormRepository) ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	query := r.conn.WithContext(ctx).Model(&models.Item{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		query = query.Where("code LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern)
	}

	var items []models.Item
	if err := query.Order("code ASC").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "listing items")
	}
	return items, nil
}

func (r *gormRepository) ListLowStock(ctx context.Context, threshold *int) ([]models.Item, error) {
	query := r.conn.WithContext(ctx).Model(&models.Item{})
	if threshold != nil {
		query = query.Where("quantity <= ?", *threshold)
	} else {
		query = query.Where("quantity <= min_quantity")
	}

	var items []models.Item
	if err := query.Order("quantity ASC").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "listing low stock items")
	}
	return items, nil
}

func (r *gormRepository) CreateTransaction(ctx context.Context, txn *models.StockTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if err := r.conn.WithContext(ctx).Create(txn).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, err, "creating stock transaction")
	}
	return nil
}

func (r *gormRepository) ApplyQuantityDelta(ctx context.Context, itemID uuid.UUID, delta int) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.CodeStorage, result.Error, "applying quantity delta")
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "item not found").
			WithDetails(map[string]string{"id": itemID.String()})
	}
	return nil
}

func (r *gormRepository) ListTransactions(ctx context.Context, itemID uuid.UUID, query TransactionQuery) ([]models.StockTransaction, error) {
	q := r.conn.WithContext(ctx).
		Model(&models.StockTransaction{}).
		Where("item_id = ?", itemID)
	q = applyTransactionBounds(q, query)

	var txns []models.StockTransaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "listing stock transactions")
	}
	return txns, nil
}

func (r *gormRepository) ListAllTransactions(ctx context.Context, query TransactionQuery) ([]TransactionRecord, error) {
	q := r.conn.WithContext(ctx).
		Model(&models.StockTransaction{}).
		Select("stock_transactions.*, items.code AS item_code, items.description AS item_description").
		Joins("JOIN items ON items.id = stock_transactions.item_id")
	q = applyTransactionBounds(q, query)

	var records []TransactionRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, err, "listing all stock transactions")
	}
	return records, nil
}

// applyTransactionBounds applies date bounds, newest-first ordering and the
// optional limit shared by both history listings. Ties on created_at break on
// insertion order so same-instant movements still read newest first.
func applyTransactionBounds(q *gorm.DB, query TransactionQuery) *gorm.DB {
	if query.From != nil {
		q = q.Where("stock_transactions.created_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("stock_transactions.created_at <= ?", *query.To)
	}
	q = q.Order("stock_transactions.created_at DESC, stock_transactions.rowid DESC")
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	return q
}
