package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
)

// StockService defines the business logic for the stock ledger.
type StockService interface {
	Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.StockEntry, *ServiceError)
	List(ctx context.Context, productID *uuid.UUID, lowStockOnly bool) ([]models.StockEntry, *ServiceError)
	CreateEntry(ctx context.Context, req *models.CreateStockEntryRequest) (*models.StockEntry, *ServiceError)
	UpdateEntry(ctx context.Context, productID, warehouseID uuid.UUID, req *models.UpdateStockEntryRequest) (*models.StockEntry, *ServiceError)
	AdjustReserved(ctx context.Context, productID, warehouseID uuid.UUID, delta int) (*models.StockEntry, *ServiceError)
	RemoveEntry(ctx context.Context, productID, warehouseID uuid.UUID) *ServiceError
}

type stockServiceImpl struct {
	repo              repository.StockRepository
	lowStockThreshold int
	logger            *zap.Logger
}

// NewStockService creates a new StockService. lowStockThreshold is the
// available quantity below which an entry counts as low stock.
func NewStockService(repo repository.StockRepository, lowStockThreshold int, logger *zap.Logger) StockService {
	return &stockServiceImpl{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

func (s *stockServiceImpl) Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.StockEntry, *ServiceError) {
	entry, err := s.repo.Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, mapRepositoryError(err, "Stock entry not found")
	}
	return entry, nil
}

func (s *stockServiceImpl) List(ctx context.Context, productID *uuid.UUID, lowStockOnly bool) ([]models.StockEntry, *ServiceError) {
	threshold := 0
	if lowStockOnly {
		threshold = s.lowStockThreshold
	}
	entries, err := s.repo.FindAll(ctx, productID, threshold)
	if err != nil {
		s.logger.Error("failed to list stock entries", zap.Error(err))
		return nil, newInternalError()
	}
	return entries, nil
}

func (s *stockServiceImpl) CreateEntry(ctx context.Context, req *models.CreateStockEntryRequest) (*models.StockEntry, *ServiceError) {
	if req.InitialOnHand < 0 {
		return nil, newValidationError("initial_on_hand must not be negative")
	}

	entry := &models.StockEntry{
		ProductID:      req.ProductID,
		WarehouseID:    req.WarehouseID,
		QuantityOnHand: req.InitialOnHand,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, mapRepositoryError(err, "Product or warehouse not found")
	}

	s.logger.Info("stock entry created",
		zap.String("product_id", req.ProductID.String()),
		zap.String("warehouse_id", req.WarehouseID.String()),
		zap.Int("initial_on_hand", req.InitialOnHand),
	)
	return entry, nil
}

func (s *stockServiceImpl) UpdateEntry(ctx context.Context, productID, warehouseID uuid.UUID, req *models.UpdateStockEntryRequest) (*models.StockEntry, *ServiceError) {
	if req.QuantityOnHand == nil {
		return nil, newValidationError("quantity_on_hand is required")
	}

	err := s.repo.SetOnHand(ctx, productID, warehouseID, *req.QuantityOnHand, req.LastCountedAt)
	if err != nil {
		svcErr := mapRepositoryError(err, "Stock entry not found")
		if svcErr.Code == CodeValidation {
			svcErr.Message = "quantity_on_hand cannot drop below the reserved quantity"
		}
		return nil, svcErr
	}

	s.logger.Info("stock entry updated",
		zap.String("product_id", productID.String()),
		zap.String("warehouse_id", warehouseID.String()),
		zap.Int("quantity_on_hand", *req.QuantityOnHand),
	)
	return s.Get(ctx, productID, warehouseID)
}

func (s *stockServiceImpl) AdjustReserved(ctx context.Context, productID, warehouseID uuid.UUID, delta int) (*models.StockEntry, *ServiceError) {
	if delta == 0 {
		return nil, newValidationError("delta must not be zero")
	}

	err := s.repo.AdjustReserved(ctx, productID, warehouseID, delta)
	if err != nil {
		svcErr := mapRepositoryError(err, "Stock entry not found")
		if svcErr.Code == CodeValidation {
			svcErr.Message = "reserved quantity must stay between zero and the on-hand quantity"
		}
		return nil, svcErr
	}

	return s.Get(ctx, productID, warehouseID)
}

func (s *stockServiceImpl) RemoveEntry(ctx context.Context, productID, warehouseID uuid.UUID) *ServiceError {
	if err := s.repo.RemoveEntry(ctx, productID, warehouseID); err != nil {
		svcErr := mapRepositoryError(err, "Stock entry not found")
		if svcErr.Code == CodeConflict {
			svcErr.Message = "Cannot remove a stock entry with outstanding reservations"
		}
		return svcErr
	}

	s.logger.Info("stock entry removed",
		zap.String("product_id", productID.String()),
		zap.String("warehouse_id", warehouseID.String()),
	)
	return nil
}
