package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
)

// SalesListResult pairs a page of transactions with the total count.
type SalesListResult struct {
	Transactions []models.SalesTransaction `json:"transactions"`
	Total        int64                     `json:"total"`
}

// SalesService coordinates recording a sale: price resolution, ledger
// debit and transaction append as one atomic unit.
type SalesService interface {
	RecordSale(ctx context.Context, req *models.RecordSaleRequest, createdBy string) (*models.SalesTransaction, *ServiceError)
	List(ctx context.Context, page, limit int) (*SalesListResult, *ServiceError)
}

type salesServiceImpl struct {
	repo        repository.SalesRepository
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

// NewSalesService creates a new SalesService.
func NewSalesService(repo repository.SalesRepository, catalogRepo repository.CatalogRepository, logger *zap.Logger) SalesService {
	return &salesServiceImpl{
		repo:        repo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// RecordSale resolves the unit price snapshot from the product's retail
// or wholesale price, then debits the stock entry and appends the sale
// in one database transaction. The total is exact decimal arithmetic,
// never recomputed afterwards.
func (s *salesServiceImpl) RecordSale(ctx context.Context, req *models.RecordSaleRequest, createdBy string) (*models.SalesTransaction, *ServiceError) {
	if req.Quantity <= 0 {
		return nil, newValidationError("quantity must be greater than zero")
	}

	product, err := s.catalogRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, mapRepositoryError(err, "Product not found")
	}

	var unitPrice *decimal.Decimal
	switch req.TransactionType {
	case models.TransactionTypeRetail:
		unitPrice = product.RetailPrice
	case models.TransactionTypeWholesale:
		unitPrice = product.WholesalePrice
	default:
		return nil, newValidationError("transaction_type must be retail or wholesale")
	}
	if unitPrice == nil {
		return nil, newValidationError("product has no " + req.TransactionType + " price set")
	}

	txn := &models.SalesTransaction{
		ID:              uuid.New(),
		ProductID:       req.ProductID,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		UnitPrice:       *unitPrice,
		TotalAmount:     unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		CreatedBy:       createdBy,
	}

	if err := s.repo.RecordSale(ctx, txn, req.WarehouseID); err != nil {
		svcErr := mapRepositoryError(err, "Stock entry not found for this product and warehouse")
		if svcErr.Code == CodeInternal {
			s.logger.Error("failed to record sale",
				zap.String("product_id", req.ProductID.String()),
				zap.String("warehouse_id", req.WarehouseID.String()),
				zap.Error(err),
			)
		}
		return nil, svcErr
	}

	s.logger.Info("sale recorded",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("type", req.TransactionType),
		zap.Int("quantity", req.Quantity),
		zap.String("total_amount", txn.TotalAmount.String()),
	)
	return txn, nil
}

func (s *salesServiceImpl) List(ctx context.Context, page, limit int) (*SalesListResult, *ServiceError) {
	txns, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("failed to list sales transactions", zap.Error(err))
		return nil, newInternalError()
	}
	return &SalesListResult{Transactions: txns, Total: total}, nil
}
