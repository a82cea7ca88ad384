package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/services"
)

// StockController handles HTTP requests for the stock ledger.
type StockController struct {
	stockService services.StockService
}

// NewStockController creates a new StockController.
func NewStockController(stockService services.StockService) *StockController {
	return &StockController{stockService: stockService}
}

func (sc *StockController) entryKey(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	productID, ok := parseIDParam(ctx, "product_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	warehouseID, ok := parseIDParam(ctx, "warehouse_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return productID, warehouseID, true
}

// ListEntries handles GET /inventory. Supports ?product_id=...&low_stock=true.
func (sc *StockController) ListEntries(ctx *gin.Context) {
	var productID *uuid.UUID
	if raw := ctx.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id", "code": services.CodeValidation})
			return
		}
		productID = &id
	}
	lowStockOnly := ctx.Query("low_stock") == "true"

	entries, svcErr := sc.stockService.List(ctx.Request.Context(), productID, lowStockOnly)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetEntry handles GET /inventory/:product_id/:warehouse_id.
func (sc *StockController) GetEntry(ctx *gin.Context) {
	productID, warehouseID, ok := sc.entryKey(ctx)
	if !ok {
		return
	}

	entry, svcErr := sc.stockService.Get(ctx.Request.Context(), productID, warehouseID)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entry": entry})
}

// CreateEntry handles POST /inventory (admin only).
func (sc *StockController) CreateEntry(ctx *gin.Context) {
	var req models.CreateStockEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	entry, svcErr := sc.stockService.CreateEntry(ctx.Request.Context(), &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// UpdateEntry handles PUT /inventory/:product_id/:warehouse_id (admin
// only): manual stock take overwriting the on-hand quantity.
func (sc *StockController) UpdateEntry(ctx *gin.Context) {
	productID, warehouseID, ok := sc.entryKey(ctx)
	if !ok {
		return
	}

	var req models.UpdateStockEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	entry, svcErr := sc.stockService.UpdateEntry(ctx.Request.Context(), productID, warehouseID, &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entry": entry})
}

// AdjustReserved handles PATCH /inventory/:product_id/:warehouse_id/reserve
// (admin only).
func (sc *StockController) AdjustReserved(ctx *gin.Context) {
	productID, warehouseID, ok := sc.entryKey(ctx)
	if !ok {
		return
	}

	var req models.AdjustReservedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	entry, svcErr := sc.stockService.AdjustReserved(ctx.Request.Context(), productID, warehouseID, req.Delta)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entry": entry})
}

// RemoveEntry handles DELETE /inventory/:product_id/:warehouse_id
// (admin only).
func (sc *StockController) RemoveEntry(ctx *gin.Context) {
	productID, warehouseID, ok := sc.entryKey(ctx)
	if !ok {
		return
	}

	if svcErr := sc.stockService.RemoveEntry(ctx.Request.Context(), productID, warehouseID); svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Stock entry removed"})
}
