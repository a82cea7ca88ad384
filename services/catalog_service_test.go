package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
	"github.com/nishaddev/Mobile-inventory/services"
)

func newCatalogService(catalogRepo *mockCatalogRepo, stockRepo *mockStockRepo) services.CatalogService {
	logger, _ := zap.NewDevelopment()
	return services.NewCatalogService(catalogRepo, stockRepo, nil, logger)
}

func TestCreateProduct_DefaultsUnitsToOne(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{}, &mockStockRepo{})

	product, svcErr := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Name:          "Tempered Glass",
		PurchasePrice: decimal.RequireFromString("1.20"),
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, 1, product.Units)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCreateProduct_RejectsNegativePrice(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{}, &mockStockRepo{})

	product, svcErr := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Name:          "Charger",
		PurchasePrice: decimal.RequireFromString("-0.01"),
	})

	assert.Nil(t, product)
	assert.Equal(t, services.CodeValidation, svcErr.Code)
	assert.Contains(t, svcErr.Message, "purchase_price")
}

func TestCreateProduct_RejectsNegativeRetailPrice(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{}, &mockStockRepo{})

	product, svcErr := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Name:          "Charger",
		PurchasePrice: decimal.RequireFromString("4.00"),
		RetailPrice:   decimalPtr("-9.99"),
	})

	assert.Nil(t, product)
	assert.Contains(t, svcErr.Message, "retail_price")
}

func TestCreateProduct_DanglingCategory(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{createErr: repository.ErrCategoryNotFound}, &mockStockRepo{})

	categoryID := uuid.New()
	product, svcErr := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Name:          "Case",
		PurchasePrice: decimal.RequireFromString("2.00"),
		CategoryID:    &categoryID,
	})

	assert.Nil(t, product)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "Category not found", svcErr.Message)
}

func TestUpdateProduct_DanglingCategory(t *testing.T) {
	product := &models.Product{ID: uuid.New(), Name: "Case", PurchasePrice: decimal.RequireFromString("2.00")}
	svc := newCatalogService(&mockCatalogRepo{product: product, updateErr: repository.ErrCategoryNotFound}, &mockStockRepo{})

	categoryID := uuid.New()
	_, svcErr := svc.UpdateProduct(context.Background(), product.ID, &models.UpdateProductRequest{
		CategoryID: &categoryID,
	})

	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "Category not found", svcErr.Message)
}

func TestGetProduct_SumsOnHandAcrossWarehouses(t *testing.T) {
	product := &models.Product{ID: uuid.New(), Name: "Cable", PurchasePrice: decimal.RequireFromString("2.00")}
	stockRepo := &mockStockRepo{entries: []models.StockEntry{
		{ProductID: product.ID, WarehouseID: uuid.New(), QuantityOnHand: 8},
		{ProductID: product.ID, WarehouseID: uuid.New(), QuantityOnHand: 12, QuantityReserved: 3},
	}}
	svc := newCatalogService(&mockCatalogRepo{product: product}, stockRepo)

	detail, svcErr := svc.GetProduct(context.Background(), product.ID)

	assert.Nil(t, svcErr)
	assert.Equal(t, 20, detail.TotalOnHand)
	assert.Len(t, detail.StockEntries, 2)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{productErr: repository.ErrNotFound}, &mockStockRepo{})

	detail, svcErr := svc.GetProduct(context.Background(), uuid.New())

	assert.Nil(t, detail)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "Product not found", svcErr.Message)
}

func TestUpdateProduct_AppliesOnlyProvidedFields(t *testing.T) {
	product := &models.Product{
		ID:            uuid.New(),
		Name:          "Old Name",
		Description:   "keep me",
		PurchasePrice: decimal.RequireFromString("3.00"),
		Units:         4,
	}
	svc := newCatalogService(&mockCatalogRepo{product: product}, &mockStockRepo{})

	name := "New Name"
	updated, svcErr := svc.UpdateProduct(context.Background(), product.ID, &models.UpdateProductRequest{
		Name:        &name,
		RetailPrice: decimalPtr("6.50"),
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, 4, updated.Units)
	assert.True(t, updated.RetailPrice.Equal(decimal.RequireFromString("6.50")))
}

func TestUpdateProduct_RejectsNegativePrice(t *testing.T) {
	product := &models.Product{ID: uuid.New(), Name: "Cable", PurchasePrice: decimal.RequireFromString("3.00")}
	svc := newCatalogService(&mockCatalogRepo{product: product}, &mockStockRepo{})

	_, svcErr := svc.UpdateProduct(context.Background(), product.ID, &models.UpdateProductRequest{
		WholesalePrice: decimalPtr("-1.00"),
	})

	assert.Equal(t, services.CodeValidation, svcErr.Code)
	assert.Contains(t, svcErr.Message, "wholesale_price")
}

func TestDeleteProduct_BlockedByReservations(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{deleteErr: repository.ErrHasReservations}, &mockStockRepo{})

	svcErr := svc.DeleteProduct(context.Background(), uuid.New())

	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, services.CodeConflict, svcErr.Code)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{categoryErr: gorm.ErrDuplicatedKey}, &mockStockRepo{})

	category, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{Name: "Cases"})

	assert.Nil(t, category)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, "A category with this name already exists", svcErr.Message)
}

func TestDeleteCategory_StillInUse(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{deleteErr: repository.ErrInUse}, &mockStockRepo{})

	svcErr := svc.DeleteCategory(context.Background(), uuid.New())

	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, "Category is still assigned to products", svcErr.Message)
}

func TestCreateWarehouse_DuplicateName(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{warehouseErr: gorm.ErrDuplicatedKey}, &mockStockRepo{})

	warehouse, svcErr := svc.CreateWarehouse(context.Background(), &models.CreateWarehouseRequest{Name: "Main"})

	assert.Nil(t, warehouse)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
}

func TestDeleteWarehouse_StillHoldsStock(t *testing.T) {
	svc := newCatalogService(&mockCatalogRepo{deleteErr: repository.ErrInUse}, &mockStockRepo{})

	svcErr := svc.DeleteWarehouse(context.Background(), uuid.New())

	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, "Warehouse still holds stock entries", svcErr.Message)
}
