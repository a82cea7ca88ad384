package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishaddev/Mobile-inventory/cache"
	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
)

const productsVersionKey = "products:version"

// ProductListResult pairs a page of products with the total count.
type ProductListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// CatalogService defines the business logic for products, categories
// and warehouses.
type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductDetail, *ServiceError)
	ListProducts(ctx context.Context, page, limit int) (*ProductListResult, *ServiceError)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError

	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError)
	ListCategories(ctx context.Context) ([]models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError

	CreateWarehouse(ctx context.Context, req *models.CreateWarehouseRequest) (*models.Warehouse, *ServiceError)
	ListWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError)
	DeleteWarehouse(ctx context.Context, id uuid.UUID) *ServiceError
}

type catalogServiceImpl struct {
	repo      repository.CatalogRepository
	stockRepo repository.StockRepository
	cache     *cache.Client
	logger    *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	repo repository.CatalogRepository,
	stockRepo repository.StockRepository,
	cacheClient *cache.Client,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		repo:      repo,
		stockRepo: stockRepo,
		cache:     cacheClient,
		logger:    logger,
	}
}

func validatePrices(purchase *models.CreateProductRequest) *ServiceError {
	if purchase.PurchasePrice.IsNegative() {
		return newValidationError("purchase_price must not be negative")
	}
	if purchase.RetailPrice != nil && purchase.RetailPrice.IsNegative() {
		return newValidationError("retail_price must not be negative")
	}
	if purchase.WholesalePrice != nil && purchase.WholesalePrice.IsNegative() {
		return newValidationError("wholesale_price must not be negative")
	}
	return nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if svcErr := validatePrices(req); svcErr != nil {
		return nil, svcErr
	}

	units := req.Units
	if units == 0 {
		units = 1
	}

	product := &models.Product{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		PurchasePrice:  req.PurchasePrice,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		Units:          units,
		CategoryID:     req.CategoryID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, newNotFoundError("Category not found")
		}
		s.logger.Error("failed to create product", zap.Error(err))
		return nil, newInternalError()
	}

	s.cache.BumpVersion(ctx, productsVersionKey)
	s.logger.Info("product created", zap.String("product_id", product.ID.String()), zap.String("name", product.Name))
	return product, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductDetail, *ServiceError) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "Product not found")
	}

	entries, err := s.stockRepo.FindAll(ctx, &id, 0)
	if err != nil {
		s.logger.Error("failed to load stock entries for product", zap.Error(err))
		return nil, newInternalError()
	}

	detail := &models.ProductDetail{Product: *product, StockEntries: entries}
	for _, e := range entries {
		detail.TotalOnHand += e.QuantityOnHand
	}
	return detail, nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, page, limit int) (*ProductListResult, *ServiceError) {
	key := ""
	if version, ok := s.cache.Version(ctx, productsVersionKey); ok {
		key = fmt.Sprintf("products:v%d:list:%d:%d", version, page, limit)
		var cached ProductListResult
		if s.cache.GetJSON(ctx, key, &cached) {
			return &cached, nil
		}
	}

	products, total, err := s.repo.FindAllProducts(ctx, page, limit)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, newInternalError()
	}

	result := &ProductListResult{Products: products, Total: total}
	if key != "" {
		s.cache.SetJSONAsync(key, result)
	}
	return result, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "Product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, newValidationError("purchase_price must not be negative")
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.RetailPrice != nil {
		if req.RetailPrice.IsNegative() {
			return nil, newValidationError("retail_price must not be negative")
		}
		product.RetailPrice = req.RetailPrice
	}
	if req.WholesalePrice != nil {
		if req.WholesalePrice.IsNegative() {
			return nil, newValidationError("wholesale_price must not be negative")
		}
		product.WholesalePrice = req.WholesalePrice
	}
	if req.Units != nil {
		product.Units = *req.Units
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, mapRepositoryError(err, "Product not found")
	}

	s.cache.BumpVersion(ctx, productsVersionKey)
	return product, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return mapRepositoryError(err, "Product not found")
	}
	s.cache.BumpVersion(ctx, productsVersionKey)
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError) {
	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflictError("A category with this name already exists")
		}
		s.logger.Error("failed to create category", zap.Error(err))
		return nil, newInternalError()
	}
	return category, nil
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.repo.FindAllCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, newInternalError()
	}
	return categories, nil
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		svcErr := mapRepositoryError(err, "Category not found")
		if svcErr.Code == CodeConflict {
			svcErr.Message = "Category is still assigned to products"
		}
		return svcErr
	}
	return nil
}

func (s *catalogServiceImpl) CreateWarehouse(ctx context.Context, req *models.CreateWarehouseRequest) (*models.Warehouse, *ServiceError) {
	warehouse := &models.Warehouse{
		ID:       uuid.New(),
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.repo.CreateWarehouse(ctx, warehouse); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflictError("A warehouse with this name already exists")
		}
		s.logger.Error("failed to create warehouse", zap.Error(err))
		return nil, newInternalError()
	}
	return warehouse, nil
}

func (s *catalogServiceImpl) ListWarehouses(ctx context.Context) ([]models.Warehouse, *ServiceError) {
	warehouses, err := s.repo.FindAllWarehouses(ctx)
	if err != nil {
		s.logger.Error("failed to list warehouses", zap.Error(err))
		return nil, newInternalError()
	}
	return warehouses, nil
}

func (s *catalogServiceImpl) DeleteWarehouse(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.DeleteWarehouse(ctx, id); err != nil {
		svcErr := mapRepositoryError(err, "Warehouse not found")
		if svcErr.Code == CodeConflict {
			svcErr.Message = "Warehouse still holds stock entries"
		}
		return svcErr
	}
	return nil
}
