package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nishaddev/Mobile-inventory/models"
)

// ---- mock catalog repository ----

type mockCatalogRepo struct {
	product    *models.Product
	productErr error
	products   []models.Product
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error

	categories   []models.Category
	warehouses   []models.Warehouse
	categoryErr  error
	warehouseErr error
}

func (m *mockCatalogRepo) CreateProduct(_ context.Context, _ *models.Product) error {
	return m.createErr
}
func (m *mockCatalogRepo) FindProductByID(_ context.Context, _ uuid.UUID) (*models.Product, error) {
	return m.product, m.productErr
}
func (m *mockCatalogRepo) FindAllProducts(_ context.Context, _, _ int) ([]models.Product, int64, error) {
	return m.products, int64(len(m.products)), m.listErr
}
func (m *mockCatalogRepo) UpdateProduct(_ context.Context, _ *models.Product) error {
	return m.updateErr
}
func (m *mockCatalogRepo) DeleteProduct(_ context.Context, _ uuid.UUID) error {
	return m.deleteErr
}
func (m *mockCatalogRepo) CreateCategory(_ context.Context, _ *models.Category) error {
	return m.categoryErr
}
func (m *mockCatalogRepo) FindAllCategories(_ context.Context) ([]models.Category, error) {
	return m.categories, m.categoryErr
}
func (m *mockCatalogRepo) DeleteCategory(_ context.Context, _ uuid.UUID) error {
	return m.deleteErr
}
func (m *mockCatalogRepo) CreateWarehouse(_ context.Context, _ *models.Warehouse) error {
	return m.warehouseErr
}
func (m *mockCatalogRepo) FindAllWarehouses(_ context.Context) ([]models.Warehouse, error) {
	return m.warehouses, m.warehouseErr
}
func (m *mockCatalogRepo) DeleteWarehouse(_ context.Context, _ uuid.UUID) error {
	return m.deleteErr
}

// ---- mock stock repository ----

type mockStockRepo struct {
	entry      *models.StockEntry
	getErr     error
	entries    []models.StockEntry
	listErr    error
	createErr  error
	setErr     error
	adjustErr  error
	removeErr  error
	lastDelta  int
	lastOnHand int
}

func (m *mockStockRepo) Get(_ context.Context, _, _ uuid.UUID) (*models.StockEntry, error) {
	return m.entry, m.getErr
}
func (m *mockStockRepo) FindAll(_ context.Context, _ *uuid.UUID, _ int) ([]models.StockEntry, error) {
	return m.entries, m.listErr
}
func (m *mockStockRepo) CreateEntry(_ context.Context, _ *models.StockEntry) error {
	return m.createErr
}
func (m *mockStockRepo) SetOnHand(_ context.Context, _, _ uuid.UUID, newOnHand int, _ *time.Time) error {
	m.lastOnHand = newOnHand
	return m.setErr
}
func (m *mockStockRepo) AdjustReserved(_ context.Context, _, _ uuid.UUID, delta int) error {
	m.lastDelta = delta
	return m.adjustErr
}
func (m *mockStockRepo) Debit(_ context.Context, _, _ uuid.UUID, _ int) error {
	return nil
}
func (m *mockStockRepo) RemoveEntry(_ context.Context, _, _ uuid.UUID) error {
	return m.removeErr
}

// ---- mock sales repository ----

type mockSalesRepo struct {
	mu        sync.Mutex
	recordErr error
	recorded  []models.SalesTransaction
	txns      []models.SalesTransaction
	listErr   error
	sold      []models.SoldTotal
	soldErr   error
}

func (m *mockSalesRepo) RecordSale(_ context.Context, txn *models.SalesTransaction, _ uuid.UUID) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, *txn)
	return nil
}
func (m *mockSalesRepo) FindAll(_ context.Context, _, _ int) ([]models.SalesTransaction, int64, error) {
	return m.txns, int64(len(m.txns)), m.listErr
}
func (m *mockSalesRepo) SoldTotalsByProduct(_ context.Context) ([]models.SoldTotal, error) {
	return m.sold, m.soldErr
}
