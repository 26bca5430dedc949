package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Zeta-Slow/Industry-Tools/pkg/db"
	"github.com/Zeta-Slow/Industry-Tools/pkg/db/models"
	"github.com/Zeta-Slow/Industry-Tools/pkg/enums"
	apperrors "github.com/Zeta-Slow/Industry-Tools/pkg/errors"
	"github.com/Zeta-Slow/Industry-Tools/pkg/logger"
)

// SeedReference marks the IN transaction recorded when an item is created
// with a nonzero starting quantity.
const SeedReference = "INITIAL"

// Service defines the mutation surface of the inventory ledger. Every
// quantity change flows through a recorded transaction; items never have
// their cached quantity written directly.
type Service interface {
	AddItem(ctx context.Context, input AddItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*models.Item, error)
	// RemoveItem deletes the item and its full movement history. It reports
	// whether a row was actually removed; deleting an unknown id is not an
	// error.
	RemoveItem(ctx context.Context, id uuid.UUID) (bool, error)
	StockIn(ctx context.Context, input StockMovementInput) (*models.StockTransaction, error)
	StockOut(ctx context.Context, input StockMovementInput) (*models.StockTransaction, error)

	GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItemByCode(ctx context.Context, code string) (*models.Item, error)

	// OnLedgerChanged registers fn to run after every committed mutation.
	OnLedgerChanged(fn func())
}

type service struct {
	client   *db.Client
	repo     Repository
	notifier *Notifier
	logg     *logger.Logger
}

// AddItemInput captures the fields of a new inventory item. Quantity seeds an
// initial IN transaction when greater than zero.
type AddItemInput struct {
	Code        string          `json:"code" validate:"required,max=64"`
	Description string          `json:"description" validate:"max=256"`
	Category    string          `json:"category" validate:"max=64"`
	Supplier    string          `json:"supplier" validate:"max=128"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	MinQuantity int             `json:"min_quantity" validate:"gte=0"`
}

// UpdateItemInput carries partial metadata updates. Nil fields are left
// untouched. Quantity is deliberately absent: stock levels only move through
// recorded transactions.
type UpdateItemInput struct {
	Code        *string          `json:"code" validate:"omitempty,max=64"`
	Description *string          `json:"description" validate:"omitempty,max=256"`
	Category    *string          `json:"category" validate:"omitempty,max=64"`
	Supplier    *string          `json:"supplier" validate:"omitempty,max=128"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	MinQuantity *int             `json:"min_quantity" validate:"omitempty,gte=0"`
}

// StockMovementInput describes one stock-in or stock-out. UnitPrice is
// required on stock-in; on stock-out it is optional and defaults to the
// item's current unit cost.
type StockMovementInput struct {
	ItemID    uuid.UUID        `json:"item_id" validate:"required"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Reference string           `json:"reference" validate:"max=128"`
	Notes     string           `json:"notes" validate:"max=512"`
}

// NewService wires the ledger service with its storage client and repository.
func NewService(client *db.Client, repo Repository, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		client:   client,
		repo:     repo,
		notifier: NewNotifier(),
		logg:     logg,
	}, nil
}

func (s *service) OnLedgerChanged(fn func()) {
	s.notifier.Subscribe(fn)
}

func (s *service) AddItem(ctx context.Context, input AddItemInput) (*models.Item, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.UnitCost.IsNegative() || input.SalePrice.IsNegative() {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "prices cannot be negative").
			WithDetails(map[string]string{"unit_cost": input.UnitCost.String(), "sale_price": input.SalePrice.String()})
	}

	item := &models.Item{
		ID:          uuid.New(),
		Code:        input.Code,
		Description: input.Description,
		Category:    input.Category,
		Supplier:    input.Supplier,
		UnitCost:    input.UnitCost,
		SalePrice:   input.SalePrice,
		MinQuantity: input.MinQuantity,
	}

	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateItem(ctx, item); err != nil {
			return err
		}
		if input.Quantity > 0 {
			seed := &models.StockTransaction{
				ItemID:    item.ID,
				Kind:      enums.TransactionKindIn,
				Quantity:  input.Quantity,
				UnitPrice: input.UnitCost,
				Reference: SeedReference,
			}
			if err := repo.CreateTransaction(ctx, seed); err != nil {
				return err
			}
			if err := repo.ApplyQuantityDelta(ctx, item.ID, input.Quantity); err != nil {
				return err
			}
			item.Quantity = input.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithItemCode(ctx, item.Code), "item created")
	s.notifier.Broadcast()
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*models.Item, error) {
	if id == uuid.Nil {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "item id is required")
	}
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.Code != nil && *input.Code == "" {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "code cannot be blank")
	}
	if (input.UnitCost != nil && input.UnitCost.IsNegative()) ||
		(input.SalePrice != nil && input.SalePrice.IsNegative()) {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "prices cannot be negative")
	}

	var updated *models.Item
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return apperrors.New(apperrors.CodeNotFound, "item not found").
				WithDetails(map[string]string{"id": id.String()})
		}

		applyItemPatch(item, input)
		if err := repo.UpdateItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithItemCode(ctx, updated.Code), "item updated")
	s.notifier.Broadcast()
	return updated, nil
}

func applyItemPatch(item *models.Item, input UpdateItemInput) {
	if input.Code != nil {
		item.Code = *input.Code
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Supplier != nil {
		item.Supplier = *input.Supplier
	}
	if input.UnitCost != nil {
		item.UnitCost = *input.UnitCost
	}
	if input.SalePrice != nil {
		item.SalePrice = *input.SalePrice
	}
	if input.MinQuantity != nil {
		item.MinQuantity = *input.MinQuantity
	}
}

func (s *service) RemoveItem(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, apperrors.New(apperrors.CodeInvalidInput, "item id is required")
	}

	var removed bool
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		ok, err := s.repo.WithTx(tx).DeleteItem(ctx, id)
		if err != nil {
			return err
		}
		removed = ok
		return nil
	})
	if err != nil {
		return false, err
	}

	if removed {
		s.logg.Info(s.logg.WithField(ctx, "item_id", id.String()), "item removed")
		s.notifier.Broadcast()
	}
	return removed, nil
}

func (s *service) StockIn(ctx context.Context, input StockMovementInput) (*models.StockTransaction, error) {
	return s.recordMovement(ctx, enums.TransactionKindIn, input)
}

func (s *service) StockOut(ctx context.Context, input StockMovementInput) (*models.StockTransaction, error) {
	return s.recordMovement(ctx, enums.TransactionKindOut, input)
}

// recordMovement is the single path by which an item's cached quantity
// changes. It inserts the transaction row and adjusts the quantity in one
// storage transaction. Stock-out is allowed to drive the quantity negative;
// overdraft surfaces as an out-of-stock status rather than a rejection.
func (s *service) recordMovement(ctx context.Context, kind enums.TransactionKind, input StockMovementInput) (*models.StockTransaction, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, apperrors.New(apperrors.CodeInvalidQuantity, "quantity must be greater than zero").
			WithDetails(map[string]int{"quantity": input.Quantity})
	}
	if input.UnitPrice == nil && kind == enums.TransactionKindIn {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "unit price is required for stock in")
	}
	if input.UnitPrice != nil && input.UnitPrice.IsNegative() {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "unit price cannot be negative")
	}

	var txn *models.StockTransaction
	var itemCode string
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.GetItem(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperrors.New(apperrors.CodeNotFound, "item not found").
				WithDetails(map[string]string{"id": input.ItemID.String()})
		}
		itemCode = item.Code

		// Price is captured at movement time; later cost changes never
		// rewrite history.
		unitPrice := item.UnitCost
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}

		txn = &models.StockTransaction{
			ItemID:    item.ID,
			Kind:      kind,
			Quantity:  input.Quantity,
			UnitPrice: unitPrice,
			Reference: input.Reference,
			Notes:     input.Notes,
		}
		if err := repo.CreateTransaction(ctx, txn); err != nil {
			return err
		}
		return repo.ApplyQuantityDelta(ctx, item.ID, kind.Sign()*input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"item_code": itemCode,
		"kind":      string(kind),
		"quantity":  input.Quantity,
	})
	s.logg.Info(logCtx, "stock movement recorded")
	s.notifier.Broadcast()
	return txn, nil
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if id == uuid.Nil {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "item id is required")
	}
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "item not found").
			WithDetails(map[string]string{"id": id.String()})
	}
	return item, nil
}

func (s *service) GetItemByCode(ctx context.Context, code string) (*models.Item, error) {
	if code == "" {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "item code is required")
	}
	item, err := s.repo.GetItemByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "item not found").
			WithDetails(map[string]string{"code": code})
	}
	return item, nil
}
