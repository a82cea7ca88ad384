package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced product, warehouse, category or
	// stock entry does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEntry means a stock entry already exists for the
	// (product, warehouse) pair.
	ErrDuplicateEntry = errors.New("stock entry already exists for this product and warehouse")

	// ErrCategoryNotFound means a product references a category that
	// does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInUse blocks deleting a warehouse or category while other rows
	// still reference it.
	ErrInUse = errors.New("record is still referenced")

	// ErrHasReservations blocks removing a stock entry (or its product)
	// while reserved quantity is outstanding.
	ErrHasReservations = errors.New("stock entry has outstanding reservations")

	// ErrInvalidAdjustment means an on-hand or reserved change would
	// break 0 <= reserved <= on_hand.
	ErrInvalidAdjustment = errors.New("adjustment violates reserved/on-hand bounds")
)

// InsufficientStockError is returned when a debit exceeds the available
// (on hand minus reserved) quantity. It names the shortfall so callers
// can retry with a smaller quantity.
type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}
