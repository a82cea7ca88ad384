package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nishaddev/Mobile-inventory/models"
)

// SalesRepository defines data access for the append-only sales log.
// There is deliberately no update or delete: a recorded transaction is
// immutable.
type SalesRepository interface {
	RecordSale(ctx context.Context, txn *models.SalesTransaction, warehouseID uuid.UUID) error
	FindAll(ctx context.Context, page, limit int) ([]models.SalesTransaction, int64, error)
	SoldTotalsByProduct(ctx context.Context) ([]models.SoldTotal, error)
}

// GormSalesRepository implements SalesRepository using GORM.
type GormSalesRepository struct {
	db *gorm.DB
}

// NewGormSalesRepository creates a new GormSalesRepository.
func NewGormSalesRepository(db *gorm.DB) SalesRepository {
	return &GormSalesRepository{db: db}
}

// RecordSale debits the stock entry and appends the transaction row in
// a single database transaction. Either both writes land or neither
// does; a failed append rolls the debit back.
func (r *GormSalesRepository) RecordSale(ctx context.Context, txn *models.SalesTransaction, warehouseID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := debitTx(tx, txn.ProductID, warehouseID, txn.Quantity); err != nil {
			return err
		}
		return tx.Create(txn).Error
	})
}

func (r *GormSalesRepository) FindAll(ctx context.Context, page, limit int) ([]models.SalesTransaction, int64, error) {
	var txns []models.SalesTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SalesTransaction{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// SoldTotalsByProduct sums sold quantity and revenue grouped by product
// and transaction type.
func (r *GormSalesRepository) SoldTotalsByProduct(ctx context.Context) ([]models.SoldTotal, error) {
	rows, err := r.db.WithContext(ctx).Model(&models.SalesTransaction{}).
		Select("product_id, transaction_type, SUM(quantity) AS quantity_sold, SUM(total_amount) AS revenue").
		Group("product_id, transaction_type").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.SoldTotal
	for rows.Next() {
		var t models.SoldTotal
		if err := rows.Scan(&t.ProductID, &t.TransactionType, &t.QuantitySold, &t.Revenue); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
