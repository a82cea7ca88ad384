package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
)

func TestFindProductByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	p, err := repo.FindProductByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, p)
}

func TestCreateProduct_DanglingCategoryRejected(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	// The category check and the insert share one transaction; no row is
	// written when the category does not exist.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	categoryID := uuid.New()
	err := repo.CreateProduct(context.Background(), &models.Product{
		ID:         uuid.New(),
		Name:       "Case",
		CategoryID: &categoryID,
	})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_UncategorizedSkipsCheck(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	p := &models.Product{ID: uuid.New(), Name: "Case", Units: 1}
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(p.ID))
	mock.ExpectCommit()

	err := repo.CreateProduct(context.Background(), p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct_DanglingCategoryRejected(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	categoryID := uuid.New()
	err := repo.UpdateProduct(context.Background(), &models.Product{
		ID:         uuid.New(),
		Name:       "Case",
		CategoryID: &categoryID,
	})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWarehouse_BlockedByStockEntries(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	// Dependency check and delete share one transaction; a referenced
	// warehouse survives with its row intact.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "stock_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.DeleteWarehouse(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWarehouse_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "stock_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "warehouses"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWarehouse(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestDeleteCategory_BlockedByProducts(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrInUse)
}

func TestDeleteProduct_BlockedByReservations(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "stock_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.DeleteProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrHasReservations)
}

func TestDeleteProduct_CascadesStockEntries(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "stock_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "stock_entries"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteProduct(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCatalogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "stock_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "stock_entries"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
