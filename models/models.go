package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction type constants.
const (
	TransactionTypeRetail    = "retail"
	TransactionTypeWholesale = "wholesale"
)

// Category groups products (e.g. "Cases", "Chargers").
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Warehouse is a physical storage location.
type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Location  string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Product is a catalog item. Prices are exact decimals; retail and
// wholesale prices are optional and a sale of that type fails while the
// corresponding price is unset.
type Product struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string           `gorm:"type:varchar(255);not null" json:"name"`
	Description    string           `gorm:"type:text" json:"description,omitempty"`
	PurchasePrice  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	RetailPrice    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"retail_price,omitempty"`
	WholesalePrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"wholesale_price,omitempty"`
	Units          int              `gorm:"not null;default:1" json:"units"`
	CategoryID     *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

// StockEntry holds the quantities for one (product, warehouse) pair.
// The composite primary key enforces at most one row per pair.
type StockEntry struct {
	ProductID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"product_id"`
	WarehouseID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"warehouse_id"`
	QuantityOnHand   int        `gorm:"not null;default:0" json:"quantity_on_hand"`
	QuantityReserved int        `gorm:"not null;default:0" json:"quantity_reserved"`
	LastCountedAt    *time.Time `json:"last_counted_at,omitempty"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Available is the sellable quantity: on hand minus reserved.
func (e *StockEntry) Available() int {
	return e.QuantityOnHand - e.QuantityReserved
}

// SalesTransaction is an append-only record of a completed sale. The
// unit price is a snapshot taken at sale time and the total is computed
// once at creation; neither is ever recomputed.
type SalesTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	TransactionType string          `gorm:"type:varchar(16);not null" json:"transaction_type"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	CreatedBy       string          `gorm:"type:varchar(128)" json:"created_by,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// SoldTotal is an aggregate of sold quantity and revenue for one
// product and transaction type.
type SoldTotal struct {
	ProductID       uuid.UUID       `json:"product_id"`
	TransactionType string          `json:"transaction_type"`
	QuantitySold    int             `json:"quantity_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
}
