package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
)

var oneHundred = decimal.NewFromInt(100)

// AnalyticsService derives summary figures from current catalog, ledger
// and sales rows. It is read-only and recomputes on every call; results
// are never cached, so a summary always reflects the rows as they were
// at request time.
type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, *ServiceError)
	Products(ctx context.Context) ([]models.ProductAnalytics, *ServiceError)
}

type analyticsServiceImpl struct {
	catalogRepo       repository.CatalogRepository
	stockRepo         repository.StockRepository
	salesRepo         repository.SalesRepository
	lowStockThreshold int
	logger            *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	catalogRepo repository.CatalogRepository,
	stockRepo repository.StockRepository,
	salesRepo repository.SalesRepository,
	lowStockThreshold int,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsServiceImpl{
		catalogRepo:       catalogRepo,
		stockRepo:         stockRepo,
		salesRepo:         salesRepo,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

// Summary computes the dashboard headline figures: inventory cost and
// retail value over on-hand quantities, potential profit and margin.
// Margin is zero when retail value is zero.
func (s *analyticsServiceImpl) Summary(ctx context.Context) (*models.AnalyticsSummary, *ServiceError) {
	products, _, err := s.catalogRepo.FindAllProducts(ctx, 1, 0)
	if err != nil {
		s.logger.Error("failed to load products for summary", zap.Error(err))
		return nil, newInternalError()
	}
	entries, err := s.stockRepo.FindAll(ctx, nil, 0)
	if err != nil {
		s.logger.Error("failed to load stock entries for summary", zap.Error(err))
		return nil, newInternalError()
	}

	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID.String()] = &products[i]
	}

	summary := &models.AnalyticsSummary{
		TotalInventoryCost: decimal.Zero,
		TotalRetailValue:   decimal.Zero,
		PotentialProfit:    decimal.Zero,
		ProfitMarginPct:    decimal.Zero,
	}

	for _, entry := range entries {
		product, ok := byID[entry.ProductID.String()]
		if !ok {
			continue
		}
		onHand := decimal.NewFromInt(int64(entry.QuantityOnHand))
		summary.TotalInventoryCost = summary.TotalInventoryCost.Add(product.PurchasePrice.Mul(onHand))
		if product.RetailPrice != nil {
			summary.TotalRetailValue = summary.TotalRetailValue.Add(product.RetailPrice.Mul(onHand))
		}
		summary.TotalUnitsOnHand += entry.QuantityOnHand
		if entry.Available() < s.lowStockThreshold {
			summary.LowStockCount++
		}
	}

	summary.PotentialProfit = summary.TotalRetailValue.Sub(summary.TotalInventoryCost)
	if summary.TotalRetailValue.IsPositive() {
		summary.ProfitMarginPct = summary.PotentialProfit.
			Div(summary.TotalRetailValue).
			Mul(oneHundred).
			Round(1)
	}
	return summary, nil
}

// Products aggregates per-product on-hand and reserved totals across
// warehouses together with sold counts and revenue by transaction type.
func (s *analyticsServiceImpl) Products(ctx context.Context) ([]models.ProductAnalytics, *ServiceError) {
	products, _, err := s.catalogRepo.FindAllProducts(ctx, 1, 0)
	if err != nil {
		s.logger.Error("failed to load products for analytics", zap.Error(err))
		return nil, newInternalError()
	}
	entries, err := s.stockRepo.FindAll(ctx, nil, 0)
	if err != nil {
		s.logger.Error("failed to load stock entries for analytics", zap.Error(err))
		return nil, newInternalError()
	}
	soldTotals, err := s.salesRepo.SoldTotalsByProduct(ctx)
	if err != nil {
		s.logger.Error("failed to load sold totals for analytics", zap.Error(err))
		return nil, newInternalError()
	}

	byID := make(map[string]*models.ProductAnalytics, len(products))
	result := make([]models.ProductAnalytics, len(products))
	for i, product := range products {
		result[i] = models.ProductAnalytics{
			ProductID: product.ID,
			Name:      product.Name,
			Revenue:   decimal.Zero,
		}
		byID[product.ID.String()] = &result[i]
	}

	for _, entry := range entries {
		if pa, ok := byID[entry.ProductID.String()]; ok {
			pa.TotalOnHand += entry.QuantityOnHand
			pa.TotalReserved += entry.QuantityReserved
		}
	}
	for _, sold := range soldTotals {
		pa, ok := byID[sold.ProductID.String()]
		if !ok {
			continue
		}
		switch sold.TransactionType {
		case models.TransactionTypeRetail:
			pa.RetailSold += sold.QuantitySold
		case models.TransactionTypeWholesale:
			pa.WholesaleSold += sold.QuantitySold
		}
		pa.Revenue = pa.Revenue.Add(sold.Revenue)
	}
	return result, nil
}
