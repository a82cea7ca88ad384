package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	Units          int              `json:"units" binding:"omitempty,gte=1"`
	CategoryID     *uuid.UUID       `json:"category_id"`
}

// UpdateProductRequest is the payload for PUT /products/:id. All fields
// are optional; only the ones present are applied.
type UpdateProductRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Description    *string          `json:"description"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	Units          *int             `json:"units" binding:"omitempty,gte=1"`
	CategoryID     *uuid.UUID       `json:"category_id"`
}

// CreateCategoryRequest is the payload for POST /categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateWarehouseRequest is the payload for POST /warehouses.
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// CreateStockEntryRequest assigns a product to a warehouse with an
// initial on-hand quantity. Reserved always starts at zero.
type CreateStockEntryRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	WarehouseID   uuid.UUID `json:"warehouse_id" binding:"required"`
	InitialOnHand int       `json:"initial_on_hand" binding:"gte=0"`
}

// UpdateStockEntryRequest overwrites the on-hand quantity of an entry
// (manual stock take). LastCountedAt is recorded when provided.
type UpdateStockEntryRequest struct {
	QuantityOnHand *int       `json:"quantity_on_hand" binding:"omitempty,gte=0"`
	LastCountedAt  *time.Time `json:"last_counted_at"`
}

// AdjustReservedRequest changes the reserved quantity by a signed delta.
type AdjustReservedRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// RecordSaleRequest is the payload for POST /sales.
type RecordSaleRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	WarehouseID     uuid.UUID `json:"warehouse_id" binding:"required"`
	TransactionType string    `json:"transaction_type" binding:"required,oneof=retail wholesale"`
	Quantity        int       `json:"quantity" binding:"required,gt=0"`
}

// ProductDetail is a product together with its stock entries across
// warehouses, as shown on the product detail page.
type ProductDetail struct {
	Product      Product      `json:"product"`
	StockEntries []StockEntry `json:"stock_entries"`
	TotalOnHand  int          `json:"total_on_hand"`
}

// AnalyticsSummary holds the dashboard headline figures, recomputed
// from current rows on every request.
type AnalyticsSummary struct {
	TotalInventoryCost decimal.Decimal `json:"total_inventory_cost"`
	TotalRetailValue   decimal.Decimal `json:"total_retail_value"`
	PotentialProfit    decimal.Decimal `json:"potential_profit"`
	ProfitMarginPct    decimal.Decimal `json:"profit_margin_pct"`
	TotalUnitsOnHand   int             `json:"total_units_on_hand"`
	LowStockCount      int             `json:"low_stock_count"`
}

// ProductAnalytics aggregates one product's position across warehouses
// and its sold counts by transaction type.
type ProductAnalytics struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	TotalOnHand   int             `json:"total_on_hand"`
	TotalReserved int             `json:"total_reserved"`
	RetailSold    int             `json:"retail_sold"`
	WholesaleSold int             `json:"wholesale_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
}
