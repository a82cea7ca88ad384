package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nishaddev/Mobile-inventory/models"
)

// StockRepository defines data access for the stock ledger. Every
// mutation is a single conditional statement so that concurrent writes
// to the same (product, warehouse) entry serialize inside the database
// and can never drive quantities out of bounds.
type StockRepository interface {
	Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.StockEntry, error)
	FindAll(ctx context.Context, productID *uuid.UUID, lowStockBelow int) ([]models.StockEntry, error)
	CreateEntry(ctx context.Context, entry *models.StockEntry) error
	SetOnHand(ctx context.Context, productID, warehouseID uuid.UUID, newOnHand int, lastCountedAt *time.Time) error
	AdjustReserved(ctx context.Context, productID, warehouseID uuid.UUID, delta int) error
	Debit(ctx context.Context, productID, warehouseID uuid.UUID, quantity int) error
	RemoveEntry(ctx context.Context, productID, warehouseID uuid.UUID) error
}

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository.
func NewGormStockRepository(db *gorm.DB) StockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.StockEntry, error) {
	var entry models.StockEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *GormStockRepository) FindAll(ctx context.Context, productID *uuid.UUID, lowStockBelow int) ([]models.StockEntry, error) {
	query := r.db.WithContext(ctx).Model(&models.StockEntry{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if lowStockBelow > 0 {
		query = query.Where("quantity_on_hand - quantity_reserved < ?", lowStockBelow)
	}

	var entries []models.StockEntry
	if err := query.Order("updated_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry inserts a new ledger row after verifying the product and
// warehouse exist and no entry for the pair does. The checks and the
// insert share one transaction; the composite primary key backs the
// duplicate check against a concurrent insert.
func (r *GormStockRepository) CreateEntry(ctx context.Context, entry *models.StockEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Product{}).Where("id = ?", entry.ProductID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&models.Warehouse{}).Where("id = ?", entry.WarehouseID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&models.StockEntry{}).
			Where("product_id = ? AND warehouse_id = ?", entry.ProductID, entry.WarehouseID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateEntry
		}
		if err := tx.Create(entry).Error; err != nil {
			// A concurrent insert for the same pair can commit between
			// the count and this insert; the composite key reports it.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEntry
			}
			return err
		}
		return nil
	})
}

// SetOnHand overwrites the on-hand quantity. The update only matches
// while the new value still covers the reserved quantity.
func (r *GormStockRepository) SetOnHand(ctx context.Context, productID, warehouseID uuid.UUID, newOnHand int, lastCountedAt *time.Time) error {
	if newOnHand < 0 {
		return ErrInvalidAdjustment
	}

	updates := map[string]interface{}{"quantity_on_hand": newOnHand}
	if lastCountedAt != nil {
		updates["last_counted_at"] = *lastCountedAt
	}

	res := r.db.WithContext(ctx).Model(&models.StockEntry{}).
		Where("product_id = ? AND warehouse_id = ? AND quantity_reserved <= ?", productID, warehouseID, newOnHand).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.explainMiss(ctx, productID, warehouseID, ErrInvalidAdjustment)
	}
	return nil
}

// AdjustReserved applies a signed delta to the reserved quantity,
// matching only while 0 <= reserved+delta <= on_hand.
func (r *GormStockRepository) AdjustReserved(ctx context.Context, productID, warehouseID uuid.UUID, delta int) error {
	res := r.db.WithContext(ctx).Model(&models.StockEntry{}).
		Where("product_id = ? AND warehouse_id = ? AND quantity_reserved + ? >= 0 AND quantity_reserved + ? <= quantity_on_hand",
			productID, warehouseID, delta, delta).
		Update("quantity_reserved", gorm.Expr("quantity_reserved + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.explainMiss(ctx, productID, warehouseID, ErrInvalidAdjustment)
	}
	return nil
}

// Debit reduces on-hand by quantity, matching only while the available
// (on hand minus reserved) quantity covers it. All-or-nothing: a failed
// debit leaves the row untouched.
func (r *GormStockRepository) Debit(ctx context.Context, productID, warehouseID uuid.UUID, quantity int) error {
	return debitTx(r.db.WithContext(ctx), productID, warehouseID, quantity)
}

// debitTx runs the conditional debit on the given handle so the sales
// repository can reuse it inside its transaction.
func debitTx(tx *gorm.DB, productID, warehouseID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidAdjustment
	}

	res := tx.Model(&models.StockEntry{}).
		Where("product_id = ? AND warehouse_id = ? AND quantity_on_hand - quantity_reserved >= ?",
			productID, warehouseID, quantity).
		Update("quantity_on_hand", gorm.Expr("quantity_on_hand - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var entry models.StockEntry
		err := tx.Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return &InsufficientStockError{Requested: quantity, Available: entry.Available()}
	}
	return nil
}

// RemoveEntry deletes the row, matching only while nothing is reserved.
func (r *GormStockRepository) RemoveEntry(ctx context.Context, productID, warehouseID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ? AND quantity_reserved = 0", productID, warehouseID).
		Delete(&models.StockEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.explainMiss(ctx, productID, warehouseID, ErrHasReservations)
	}
	return nil
}

// explainMiss distinguishes a missing row from a failed condition after
// a conditional write matched nothing.
func (r *GormStockRepository) explainMiss(ctx context.Context, productID, warehouseID uuid.UUID, onCondition error) error {
	var entry models.StockEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return onCondition
}
