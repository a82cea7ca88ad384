package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nishaddev/Mobile-inventory/models"
)

// CatalogRepository defines data access for products, categories and
// warehouses. Deletes check for dependent rows inside the same
// transaction as the delete so a dependent row cannot appear between
// the check and the delete.
type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAllProducts(ctx context.Context, page, limit int) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, category *models.Category) error
	FindAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error
	FindAllWarehouses(ctx context.Context) ([]models.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id uuid.UUID) error
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

// CreateProduct inserts a product, verifying any referenced category
// exists inside the same transaction.
func (r *GormCatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, product.CategoryID); err != nil {
			return err
		}
		return tx.Create(product).Error
	})
}

// categoryExists rejects a dangling category reference. A nil ID means
// the product is uncategorized and always passes.
func categoryExists(tx *gorm.DB, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	var n int64
	if err := tx.Model(&models.Category{}).Where("id = ?", *categoryID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *GormCatalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindAllProducts(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, product.CategoryID); err != nil {
			return err
		}
		res := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Select("name", "description", "purchase_price", "retail_price", "wholesale_price", "units", "category_id").
			Updates(product)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteProduct removes a product and cascades its stock entries, but
// rejects while any of those entries has reserved quantity.
func (r *GormCatalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reserved int64
		if err := tx.Model(&models.StockEntry{}).
			Where("product_id = ? AND quantity_reserved > 0", id).
			Count(&reserved).Error; err != nil {
			return err
		}
		if reserved > 0 {
			return ErrHasReservations
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.StockEntry{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormCatalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCatalogRepository) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory rejects while any product still references the
// category.
func (r *GormCatalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormCatalogRepository) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *GormCatalogRepository) FindAllWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// DeleteWarehouse rejects while any stock entry still references the
// warehouse.
func (r *GormCatalogRepository) DeleteWarehouse(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.StockEntry{}).Where("warehouse_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
		res := tx.Delete(&models.Warehouse{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
